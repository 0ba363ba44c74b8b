/*
Copyright 2024 Codenotary Inc. All rights reserved.

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

type Code string

const (
	CodSuccessCompletion Code = "00000"
	CodInternalError     Code = "XX000"

	// CodFormatError marks malformed user input, e.g. a key-value filter
	// term missing its "=" separator.
	CodFormatError Code = "QS100"

	// CodValidationError marks user input that parses but is semantically
	// invalid, e.g. an unknown sort direction.
	CodValidationError Code = "QS200"

	// CodUsageFault marks an internal defect: a value that passed
	// validation failed re-derivation during parsing. Never caused by, nor
	// blamed on, user input.
	CodUsageFault Code = "QS300"
)

var (
	CodeMap = make(map[string]Code)
)

// HasCode reports whether err carries the given failure class.
func HasCode(err error, code Code) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Code() == code
}

// IsFormat reports whether err is a malformed-input error.
func IsFormat(err error) bool {
	return HasCode(err, CodFormatError)
}

// IsValidation reports whether err is a semantically-invalid-input error.
func IsValidation(err error) bool {
	return HasCode(err, CodValidationError)
}

// IsUsage reports whether err is an internal validation/parse disagreement.
func IsUsage(err error) bool {
	return HasCode(err, CodUsageFault)
}
