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

package helper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	out := new(bytes.Buffer)
	elements := []string{"one", "two"}
	PrintTable(
		out,
		[]string{"Repository"},
		len(elements),
		func(i int) []string {
			return []string{elements[i]}
		},
		"",
	)
	ris := out.String()
	assert.Contains(t, ris, "one")
	assert.Contains(t, ris, "two")
	assert.Contains(t, ris, "2 row(s)")

	// custom table caption
	out.Reset()
	elements[1] = "three"
	PrintTable(
		out,
		[]string{"Repository"},
		len(elements),
		func(i int) []string {
			return []string{elements[i]}
		},
		"2 repositories",
	)
	ris = out.String()
	assert.Contains(t, ris, "three")
	assert.Contains(t, ris, "2 repositories")
}

func TestPrintTableZeroEle(t *testing.T) {
	out := new(bytes.Buffer)
	PrintTable(
		out,
		[]string{"Repository"},
		0,
		func(i int) []string {
			return nil
		},
		"",
	)
	assert.Equal(t, "", out.String())
}

func TestPrintTableZeroCol(t *testing.T) {
	out := new(bytes.Buffer)
	elements := []string{"one", "two"}
	PrintTable(
		out,
		[]string{},
		len(elements),
		func(i int) []string {
			return []string{elements[i]}
		},
		"",
	)
	assert.Equal(t, "", out.String())
}
