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

// Package criteria implements the query specification language of the
// search commands: repeated key=value filter flags, sort directives,
// pagination and field projection, parsed and validated into a normalized
// Query value.
package criteria

import (
	"time"
)

// Operator identifies how a filter term constrains its field. The operator
// value doubles as the flag name that collects terms for it.
type Operator string

const (
	OpStrEq Operator = "str-eq"
	OpIntEq Operator = "int-eq"
	OpMatch Operator = "match"
	OpIn    Operator = "in"
	OpNot   Operator = "not"
	OpGt    Operator = "gt"
	OpGte   Operator = "gte"
	OpLt    Operator = "lt"
	OpLte   Operator = "lte"
)

// Operators lists every filter operator in flag-registration order.
var Operators = []Operator{OpStrEq, OpIntEq, OpMatch, OpIn, OpNot, OpGt, OpGte, OpLt, OpLte}

type operatorDetails struct {
	selector    string
	description string
}

var operatorTable = map[Operator]operatorDetails{
	OpStrEq: {"", "match where a named attribute equals a string value exactly"},
	OpIntEq: {"", "match where a named attribute equals an int value exactly"},
	OpMatch: {"$regex", "for a named attribute, match a regular expression using the mongo regex engine"},
	OpIn:    {"$in", "for a named attribute, match where value is in the provided list of values, expressed as one row of CSV"},
	OpNot:   {"$not", "field and expression to omit when determining units for inclusion"},
	OpGt:    {"$gt", "matches resources whose value for the specified field is greater than the given value"},
	OpGte:   {"$gte", "matches resources whose value for the specified field is greater than or equal to the given value"},
	OpLt:    {"$lt", "matches resources whose value for the specified field is less than the given value"},
	OpLte:   {"$lte", "matches resources whose value for the specified field is less than or equal to the given value"},
}

// Flag returns the command-line flag name collecting terms for the operator.
func (o Operator) Flag() string {
	return string(o)
}

// Selector returns the mongo selector the operator maps to, or an empty
// string for plain equality.
func (o Operator) Selector() string {
	return operatorTable[o].selector
}

// Description returns the help text shown for the operator's flag.
func (o Operator) Description() string {
	return operatorTable[o].description
}

// FilterTerm is the two halves of one key=value token.
type FilterTerm struct {
	Field string
	Value string
}

// Filter is a single AND-combined constraint: one filter term together with
// the operator whose flag collected it. The value is kept as the raw string;
// semantic interpretation (int cast, regex compile, CSV split) belongs to
// the downstream query executor.
type Filter struct {
	Operator Operator
	Field    string
	Value    string
}

// FilterSpec is the filter portion of a query. Raw holds a decoded
// --filters JSON expression; when present it supersedes every composed
// term. Both halves may be populated, raw wins downstream.
type FilterSpec struct {
	Raw      interface{}
	Composed []Filter
}

// IsRaw reports whether a raw filter expression was supplied.
func (f FilterSpec) IsRaw() bool {
	return f.Raw != nil
}

// Empty reports whether no filtering was requested at all.
func (f FilterSpec) Empty() bool {
	return f.Raw == nil && len(f.Composed) == 0
}

// Direction of a sort directive.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortField is one parsed sort directive. Directives apply in flag
// occurrence order, primary key first.
type SortField struct {
	Field     string
	Direction Direction
}

// Query is the normalized result of collecting a command's search flags.
// It is built once per invocation and handed off immutably to the
// request-assembly step.
type Query struct {
	Filters FilterSpec
	Sort    []SortField
	Limit   *int
	Skip    *int
	Fields  []string

	RepoID string
	After  *time.Time
	Before *time.Time

	FromRepoID string
	ToRepoID   string
}
