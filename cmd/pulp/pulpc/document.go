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
	"strings"
	"time"

	"github.com/fkuep/pulpcore/pkg/criteria"
	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/spf13/cast"
)

const ErrNonIntegerValue = "int-eq value must be an integer"

func init() {
	errors.CodeMap[ErrNonIntegerValue] = errors.CodValidationError
}

// Document assembles the server-side criteria document for a query, keyed
// by option name. This is the point where filter values get their
// per-operator interpretation: int cast for int-eq, CSV split for in,
// mongo selectors for the rest. A raw --filters expression supersedes
// every discrete term.
func Document(q *criteria.Query) (map[string]interface{}, error) {
	doc := make(map[string]interface{})

	filters, err := filterDocument(q.Filters)
	if err != nil {
		return nil, err
	}
	if filters != nil {
		doc[criteria.OptFilters] = filters
	}

	if len(q.Sort) > 0 {
		sort := make([][]string, len(q.Sort))
		for i, s := range q.Sort {
			sort[i] = []string{s.Field, string(s.Direction)}
		}
		doc[criteria.OptSort] = sort
	}
	if q.Limit != nil {
		doc[criteria.OptLimit] = *q.Limit
	}
	if q.Skip != nil {
		doc[criteria.OptSkip] = *q.Skip
	}
	if len(q.Fields) > 0 {
		doc[criteria.OptFields] = q.Fields
	}

	if q.RepoID != "" {
		doc[criteria.OptRepoID] = q.RepoID
	}
	if q.After != nil {
		doc[criteria.OptAfter] = q.After.UTC().Format(time.RFC3339)
	}
	if q.Before != nil {
		doc[criteria.OptBefore] = q.Before.UTC().Format(time.RFC3339)
	}
	if q.FromRepoID != "" {
		doc[criteria.OptFromRepoID] = q.FromRepoID
	}
	if q.ToRepoID != "" {
		doc[criteria.OptToRepoID] = q.ToRepoID
	}
	return doc, nil
}

func filterDocument(spec criteria.FilterSpec) (interface{}, error) {
	if spec.IsRaw() {
		return spec.Raw, nil
	}
	if len(spec.Composed) == 0 {
		return nil, nil
	}
	doc := make(map[string]interface{})
	for _, f := range spec.Composed {
		value, err := termValue(f)
		if err != nil {
			return nil, err
		}
		selector := f.Operator.Selector()
		if selector == "" {
			// plain equality replaces whatever constrained the field before
			doc[f.Field] = value
			continue
		}
		clauses, ok := doc[f.Field].(map[string]interface{})
		if !ok {
			clauses = make(map[string]interface{})
			doc[f.Field] = clauses
		}
		clauses[selector] = value
	}
	return doc, nil
}

func termValue(f criteria.Filter) (interface{}, error) {
	switch f.Operator {
	case criteria.OpIntEq:
		n, err := cast.ToIntE(f.Value)
		if err != nil {
			return nil, errors.New(ErrNonIntegerValue)
		}
		return n, nil
	case criteria.OpIn:
		return strings.Split(f.Value, ","), nil
	default:
		return f.Value, nil
	}
}
