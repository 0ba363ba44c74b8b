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

package pulpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	helper "github.com/fkuep/pulpcore/cmd/helper"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cast"
)

// CommandOutput ...
type CommandOutput interface {
	Plain() string
	Json() interface{}
}

type searchOutput struct {
	action string
	rows   []map[string]interface{}
}

func (o *searchOutput) Plain() string {
	if len(o.rows) == 0 {
		return "no results"
	}
	result := bytes.NewBuffer([]byte{})
	consoleTable := tablewriter.NewWriter(result)
	cols := columnSet(o.rows)
	consoleTable.SetHeader(cols)

	for _, row := range o.rows {
		line := make([]string, len(cols))
		for i, col := range cols {
			if v, ok := row[col]; ok {
				line[i] = renderValue(v)
			}
		}
		consoleTable.Append(line)
	}

	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.Render()
	return result.String()
}

func (o *searchOutput) Json() interface{} {
	return map[string]interface{}{
		"action":  o.action,
		"results": o.rows,
	}
}

type copyOutput struct {
	request *Request
}

func (o *copyOutput) Plain() string {
	result := bytes.NewBuffer([]byte{})
	keys := make([]string, 0, len(o.request.Values))
	for k := range o.request.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	helper.PrintTable(
		result,
		[]string{"Option", "Value"},
		len(keys),
		func(i int) []string {
			return []string{keys[i], renderValue(o.request.Values[keys[i]])}
		},
		fmt.Sprintf("copy request %s accepted", o.request.ID),
	)
	return result.String()
}

func (o *copyOutput) Json() interface{} {
	return map[string]interface{}{
		"id":     o.request.ID,
		"action": o.request.Action,
		"values": o.request.Values,
	}
}

// columnSet returns the sorted union of keys across all result rows.
func columnSet(rows []map[string]interface{}) []string {
	seen := make(map[string]bool)
	cols := make([]string, 0)
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func renderValue(v interface{}) string {
	switch v.(type) {
	case string, int, int64, float64, bool:
		return cast.ToString(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}
