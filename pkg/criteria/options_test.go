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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOptionsGroups(t *testing.T) {
	full := SearchOptions(true, true)
	assert.True(t, full.Has(OptFilters))
	assert.True(t, full.Has(OptLimit))
	assert.True(t, full.Has(OptSort))
	for _, op := range Operators {
		assert.True(t, full.Has(op.Flag()))
	}

	noFilters := SearchOptions(false, true)
	assert.False(t, noFilters.Has(OptFilters))
	assert.True(t, noFilters.Has(OptLimit))

	noCriteria := SearchOptions(true, false)
	assert.True(t, noCriteria.Has(OptFilters))
	assert.False(t, noCriteria.Has(OptLimit))
	assert.False(t, noCriteria.Has(OptSort))
	assert.False(t, noCriteria.Has(OptFields))
}

func TestUnitSearchOptions(t *testing.T) {
	s := UnitSearchOptions()
	assert.True(t, s.Has(OptRepoID))
	assert.True(t, s.Has(OptAfter))
	assert.True(t, s.Has(OptBefore))
	assert.True(t, s.Has(OptFilters))
	assert.True(t, s.Has(OptSort))

	var repoID Option
	for _, opt := range s.Options() {
		if opt.Name == OptRepoID {
			repoID = opt
		}
	}
	assert.True(t, repoID.Required)
}

func TestUnitCopyOptions(t *testing.T) {
	s := UnitCopyOptions()

	assert.True(t, s.Has(OptFromRepoID))
	assert.True(t, s.Has(OptToRepoID))
	assert.False(t, s.Has(OptRepoID))

	// copy acts on the whole filtered set, so the criteria group is gone
	assert.False(t, s.Has(OptLimit))
	assert.False(t, s.Has(OptSkip))
	assert.False(t, s.Has(OptSort))
	assert.False(t, s.Has(OptFields))

	// filtering and the time bounds survive
	assert.True(t, s.Has(OptFilters))
	assert.True(t, s.Has(OpGt.Flag()))
	assert.True(t, s.Has(OptAfter))
	assert.True(t, s.Has(OptBefore))
}

func TestUnitSearchAllOptions(t *testing.T) {
	s := UnitSearchAllOptions()

	assert.False(t, s.Has(OptFilters))
	for _, op := range Operators {
		assert.False(t, s.Has(op.Flag()))
	}
	assert.False(t, s.Has(OptSort))
	assert.False(t, s.Has(OptFields))

	assert.True(t, s.Has(OptLimit))
	assert.True(t, s.Has(OptSkip))
	assert.True(t, s.Has(OptRepoID))
	assert.True(t, s.Has(OptAfter))
	assert.True(t, s.Has(OptBefore))
}

func TestOptionSetTransformationsArePure(t *testing.T) {
	base := UnitSearchOptions()
	names := base.Names()

	_ = UnitCopyOptions()
	_ = base.Remove(OptRepoID)
	_ = base.Require(OptAfter)

	require.Equal(t, names, base.Names())
	require.True(t, base.Has(OptRepoID))
	for _, opt := range base.Options() {
		if opt.Name == OptAfter {
			require.False(t, opt.Required)
		}
	}
}

func TestOptionSetRequire(t *testing.T) {
	s := NewOptionSet(Option{Name: "x"}).Require("x")
	opt := s.Options()[0]
	require.True(t, opt.Required)
}

func TestOptionSetNamesPreserveOrder(t *testing.T) {
	s := NewOptionSet(Option{Name: "c"}, Option{Name: "a"}, Option{Name: "b"})
	require.Equal(t, []string{"c", "a", "b"}, s.Names())
}
