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

package errors_test

import (
	"fmt"
	"testing"

	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestQueryError(t *testing.T) {
	cause := "cause error"
	err := errors.New(cause)

	require.Error(t, err)
	require.Equal(t, err.Error(), cause)
	require.Equal(t, err.Message(), cause)
	require.Equal(t, err.Code(), errors.CodInternalError)
	require.ErrorIs(t, err, err.Cause())
	require.NotNil(t, err.Stack())
}

func TestWrappingError(t *testing.T) {
	cause := "std error"
	err := errors.New(cause)
	wrappedMessage := "this is the message I want to show"
	wrappedError := errors.Wrap(err, wrappedMessage)
	wrappedNilError := errors.Wrap(nil, "msg")

	require.Nil(t, wrappedNilError)

	require.Error(t, wrappedError)
	require.Equal(t, wrappedError.Error(), fmt.Sprintf("%s: %s", wrappedMessage, cause))
	require.Equal(t, wrappedError.Message(), wrappedMessage)
	require.Equal(t, wrappedError.Code(), errors.CodInternalError)
	require.NotNil(t, wrappedError.Stack())
}

func TestWithCode(t *testing.T) {
	err := errors.New("field name must be specified").WithCode(errors.CodValidationError)
	require.Equal(t, errors.CodValidationError, err.Code())
	require.True(t, errors.IsValidation(err))
	require.False(t, errors.IsFormat(err))
	require.False(t, errors.IsUsage(err))

	wrapped := errors.Wrap(err, "sort validation failed")
	require.Equal(t, errors.CodValidationError, wrapped.Code())
	require.True(t, errors.IsValidation(wrapped))
}

func TestCodeMapRegistration(t *testing.T) {
	msg := "registered format error"
	errors.CodeMap[msg] = errors.CodFormatError
	defer delete(errors.CodeMap, msg)

	err := errors.New(msg)
	require.Equal(t, errors.CodFormatError, err.Code())
	require.True(t, errors.IsFormat(err))
}

func TestErrorIsComparesCodes(t *testing.T) {
	a := errors.New("one thing went wrong").WithCode(errors.CodUsageFault)
	b := errors.New("another thing went wrong").WithCode(errors.CodUsageFault)
	require.ErrorIs(t, a, b)

	c := errors.New("another thing went wrong").WithCode(errors.CodFormatError)
	require.NotErrorIs(t, a, c)
}

func TestHasCodeOnPlainError(t *testing.T) {
	require.False(t, errors.HasCode(fmt.Errorf("plain"), errors.CodFormatError))
	require.False(t, errors.IsUsage(nil))
}
