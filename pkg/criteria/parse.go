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

package criteria

import (
	"strings"
	"time"

	"github.com/fkuep/pulpcore/pkg/errors"
)

const (
	ErrMissingEqual            = `key and value must be separated by "="`
	ErrEmptySortField          = "field name must be specified"
	ErrInvalidSortDirection    = `direction must be "ascending" or "descending"`
	ErrSortDirectionDerivation = "sort direction diverged from its validated value"
	ErrInvalidFilterExpression = "filters must be a valid JSON expression"
	ErrNonPositiveLimit        = "limit must be a positive integer"
	ErrNegativeSkip            = "skip must be a non-negative integer"
	ErrInvalidTimestamp        = "timestamp must be a valid iso8601 instant"
)

func init() {
	errors.CodeMap[ErrMissingEqual] = errors.CodFormatError
	errors.CodeMap[ErrInvalidFilterExpression] = errors.CodFormatError
	errors.CodeMap[ErrEmptySortField] = errors.CodValidationError
	errors.CodeMap[ErrInvalidSortDirection] = errors.CodValidationError
	errors.CodeMap[ErrNonPositiveLimit] = errors.CodValidationError
	errors.CodeMap[ErrNegativeSkip] = errors.CodValidationError
	errors.CodeMap[ErrInvalidTimestamp] = errors.CodValidationError
	errors.CodeMap[ErrSortDirectionDerivation] = errors.CodUsageFault
}

// ParseKeyValue parses raw user input, taken as a list of strings in the
// format "name=value", into filter terms in input order. Each string is
// split on its first "=" only, so the value may itself contain "=".
func ParseKeyValue(args []string) ([]FilterTerm, error) {
	terms := make([]FilterTerm, 0, len(args))
	for _, arg := range args {
		components := strings.SplitN(arg, "=", 2)
		if len(components) != 2 {
			return nil, errors.New(ErrMissingEqual)
		}
		terms = append(terms, FilterTerm{Field: components[0], Value: components[1]})
	}
	return terms, nil
}

// ValidateSort validates that each sort argument starts with a field name
// and, if a direction is included, that it is either "ascending" or
// "descending". It must pass before ParseSort output is trusted.
func ValidateSort(args []string) error {
	for _, arg := range args {
		field, direction := explodeSortArg(arg)
		if len(field) == 0 {
			return errors.New(ErrEmptySortField)
		}
		if direction != Ascending && direction != Descending {
			return errors.New(ErrInvalidSortDirection)
		}
	}
	return nil
}

// ParseSort parses sort arguments of the form "field" or "field,direction"
// into sort fields in flag occurrence order. A direction that is illegal
// here slipped past ValidateSort, which is a defect in validation rather
// than bad user input and is reported as a usage fault.
func ParseSort(args []string) ([]SortField, error) {
	sort := make([]SortField, 0, len(args))
	for _, arg := range args {
		field, direction := explodeSortArg(arg)
		if direction != Ascending && direction != Descending {
			return nil, errors.New(ErrSortDirectionDerivation)
		}
		sort = append(sort, SortField{Field: field, Direction: direction})
	}
	return sort, nil
}

// explodeSortArg lower-cases a sort argument and splits it into its field
// name and direction. A missing or empty direction defaults to ascending;
// anything past the second comma is ignored.
func explodeSortArg(arg string) (string, Direction) {
	pieces := strings.Split(strings.ToLower(arg), ",")
	field := pieces[0]
	if len(pieces) < 2 || pieces[1] == "" {
		return field, Ascending
	}
	return field, Direction(pieces[1])
}

// ParseFields splits a comma-separated projection list, preserving order
// and duplicates.
func ParseFields(raw string) []string {
	return strings.Split(raw, ",")
}

// ParseTimestamp parses an ISO-8601 instant.
func ParseTimestamp(raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Wrap(err, ErrInvalidTimestamp)
	}
	return ts, nil
}
