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

package helper

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fkuep/pulpcore/pkg/errors"
)

var osexit = os.Exit

// QuitToStdErr prints an error on stderr and closes
func QuitToStdErr(msg interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	osexit(1)
}

// QuitWithUserError reports a failed command on stderr and closes. Errors
// caused by user input are highlighted; usage faults are flagged as
// internal so the user is never blamed for them.
func QuitWithUserError(err error) {
	if errors.IsFormat(err) || errors.IsValidation(err) {
		QuitToStdErr(color.RedString("%v", UnwrapMessage(err)))
	}
	if errors.IsUsage(err) {
		QuitToStdErr(fmt.Sprintf("internal error, please report this as a bug: %v", UnwrapMessage(err)))
	}
	QuitToStdErr(err)
}

func OverrideQuitter(quitter func(int)) {
	osexit = quitter
}

func UnwrapMessage(msg interface{}) interface{} {
	if err, ok := msg.(error); ok {
		if qerr, isQueryErr := err.(errors.Error); isQueryErr {
			return qerr.Message()
		}
	}
	return msg
}
