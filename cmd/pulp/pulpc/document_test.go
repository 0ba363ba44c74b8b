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
	"testing"
	"time"

	"github.com/fkuep/pulpcore/pkg/criteria"
	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDocumentComposedFilters(t *testing.T) {
	q := &criteria.Query{
		Filters: criteria.FilterSpec{Composed: []criteria.Filter{
			{Operator: criteria.OpStrEq, Field: "name", Value: "zoo"},
			{Operator: criteria.OpIntEq, Field: "content_unit_count", Value: "0"},
			{Operator: criteria.OpMatch, Field: "notes", Value: "^a.*"},
			{Operator: criteria.OpIn, Field: "arch", Value: "i386,x86_64"},
			{Operator: criteria.OpGt, Field: "errata_count", Value: "2"},
			{Operator: criteria.OpLte, Field: "errata_count", Value: "9"},
		}},
	}

	doc, err := Document(q)
	require.NoError(t, err)

	filters, ok := doc[criteria.OptFilters].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "zoo", filters["name"])
	require.Equal(t, 0, filters["content_unit_count"])
	require.Equal(t, map[string]interface{}{"$regex": "^a.*"}, filters["notes"])
	require.Equal(t, map[string]interface{}{"$in": []string{"i386", "x86_64"}}, filters["arch"])
	// two range terms on the same field are AND'd into one clause set
	require.Equal(t, map[string]interface{}{"$gt": "2", "$lte": "9"}, filters["errata_count"])
}

func TestDocumentRejectsNonIntegerIntEq(t *testing.T) {
	q := &criteria.Query{
		Filters: criteria.FilterSpec{Composed: []criteria.Filter{
			{Operator: criteria.OpIntEq, Field: "count", Value: "many"},
		}},
	}

	_, err := Document(q)
	require.Error(t, err)
	require.True(t, errors.IsValidation(err))
}

func TestDocumentRawFiltersWin(t *testing.T) {
	raw := map[string]interface{}{"name": "zoo"}
	q := &criteria.Query{
		Filters: criteria.FilterSpec{
			Raw: raw,
			Composed: []criteria.Filter{
				{Operator: criteria.OpGt, Field: "count", Value: "1"},
			},
		},
	}

	doc, err := Document(q)
	require.NoError(t, err)
	require.Equal(t, raw, doc[criteria.OptFilters])
}

func TestDocumentCriteria(t *testing.T) {
	limit, skip := 10, 5
	after := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	q := &criteria.Query{
		Sort: []criteria.SortField{
			{Field: "b", Direction: criteria.Ascending},
			{Field: "a", Direction: criteria.Descending},
		},
		Limit:  &limit,
		Skip:   &skip,
		Fields: []string{"id", "name"},
		RepoID: "zoo-repo",
		After:  &after,
	}

	doc, err := Document(q)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"b", "ascending"}, {"a", "descending"}}, doc[criteria.OptSort])
	require.Equal(t, 10, doc[criteria.OptLimit])
	require.Equal(t, 5, doc[criteria.OptSkip])
	require.Equal(t, []string{"id", "name"}, doc[criteria.OptFields])
	require.Equal(t, "zoo-repo", doc[criteria.OptRepoID])
	require.Equal(t, "2024-01-02T15:04:05Z", doc[criteria.OptAfter])
	require.NotContains(t, doc, criteria.OptBefore)
	require.NotContains(t, doc, criteria.OptFilters)
}

func TestDocumentEmptyQuery(t *testing.T) {
	doc, err := Document(&criteria.Query{})
	require.NoError(t, err)
	require.Empty(t, doc)
}
