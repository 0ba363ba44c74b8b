/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errors

import (
	"runtime/debug"
)

// Errors raised while assembling a search query carry a code identifying
// the failure class.
//
// An error can be created with:
//
// errors.New
// errors.Wrap
//
// if len(components) != 2 {
//    return nil, errors.New(ErrMissingEqual).WithCode(errors.CodFormatError)
// }
//
// If the error message is registered inside an init function the inline code
// definition can be skipped:
//
// func init() {
//    ...
//    errors.CodeMap[ErrMissingEqual] = errors.CodFormatError
//    ...
// }
//
// Both query errors and wrapped errors can be compared with the errors.Is
// utility.
type Error interface {
	Error() string
	Message() string
	Cause() error
	Code() Code
	Stack() string
}

func New(message string) *queryError {
	c, ok := CodeMap[message]
	if !ok {
		c = CodInternalError
	}
	e := &queryError{
		code:  c,
		msg:   message,
		stack: string(debug.Stack()),
	}

	return e
}

type queryError struct {
	code  Code
	msg   string
	stack string
}

func (f *queryError) Error() string {
	return f.msg
}

func (f *queryError) Message() string {
	return f.msg
}

func (f *queryError) Cause() error {
	return f
}

func (f *queryError) Code() Code {
	return f.code
}

func (f *queryError) Stack() string {
	return f.stack
}

func (e *queryError) WithCode(code Code) *queryError {
	e.code = code
	return e
}

func (e *queryError) Is(target error) bool {
	switch t := target.(type) {
	case *queryError:
		return compare(e, t)
	case *wrappedError:
		return compare(e, t)
	default:
		return e.Cause().Error() == target.Error()
	}
}

func compare(e Error, t Error) bool {
	if e.Code() != CodInternalError || t.Code() != CodInternalError {
		return e.Code() == t.Code()
	}
	return e.Message() == t.Message() && e.Cause().Error() == t.Cause().Error()
}
