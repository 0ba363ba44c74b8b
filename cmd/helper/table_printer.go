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
	"io"
	"strings"
	"text/tabwriter"
)

// PrintTable prints data (string arrays) in a tabular format
func PrintTable(
	w io.Writer,
	cols []string,
	nbRows int,
	getRow func(int) []string,
	caption string,
) {
	if nbRows == 0 {
		return
	}
	nbCols := len(cols)
	if nbCols == 0 {
		return
	}
	colSep := "\t"

	var sb strings.Builder
	for _, th := range cols {
		sb.WriteString(strings.Repeat("-", len(th)))
		sb.WriteString(colSep)
	}
	border := sb.String()
	sb.Reset()

	if len(caption) <= 0 {
		caption = fmt.Sprintf("%d row(s)", nbRows)
	}
	fmt.Fprint(w, caption+"\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, border)
	fmt.Fprint(tw, strings.Join(cols, colSep), colSep, "\n")
	fmt.Fprintln(tw, border)
	for i := 0; i < nbRows; i++ {
		row := getRow(i)
		nbRowCols := len(row)
		for j := 0; j < nbCols; j++ {
			if j < nbRowCols {
				sb.WriteString(row[j])
			}
			sb.WriteString(colSep)
		}
		fmt.Fprint(tw, sb.String(), "\n")
		sb.Reset()
	}
	fmt.Fprintln(tw, border)
	tw.Flush()
}
