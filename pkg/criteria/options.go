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

// Option names shared by the search command family.
const (
	OptFilters    = "filters"
	OptLimit      = "limit"
	OptSkip       = "skip"
	OptSort       = "sort"
	OptFields     = "fields"
	OptRepoID     = "repo-id"
	OptAfter      = "after"
	OptBefore     = "before"
	OptFromRepoID = "from-repo-id"
	OptToRepoID   = "to-repo-id"
)

const (
	filtersDescription = "filters provided as JSON in mongo syntax. This will override any of the discrete filter options"
	limitDescription   = "max number of items to return"
	skipDescription    = "number of items to skip"
	sortDescription    = `field name, a comma, and either the word "ascending" or "descending". The comma and direction are optional, and the direction defaults to ascending. Do not put a space before or after the comma. For multiple fields, use this option multiple times. Each one will be applied in the order supplied`
	fieldsDescription  = "comma-separated list of resource fields. Do not include spaces. Default is all fields"
	repoIDDescription  = "identifies the repository to search within"
	afterDescription   = "matches units added to the source repository on or after the given time; specified as a timestamp in iso8601 format"
	beforeDescription  = "matches units added to the source repository on or before the given time; specified as a timestamp in iso8601 format"
	fromRepoIDDesc     = "source repository from which units will be copied"
	toRepoIDDesc       = "destination repository to copy units into"
)

// Kind selects how an option's flag is registered and how its raw value is
// interpreted during Collect.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindJSON
	KindKeyValue
	KindSort
	KindFieldList
	KindTimestamp
)

// Option declares a single command-line option of a search command.
type Option struct {
	Name        string
	Shorthand   string
	Description string
	Required    bool
	Repeatable  bool
	Kind        Kind

	// Operator is set for KindKeyValue options and ties the flag to its
	// filter semantics.
	Operator Operator
}

// OptionSet is an ordered, immutable set of option declarations. Every
// transformation returns a new set, so a base configuration can be shared
// between command variants.
type OptionSet struct {
	options []Option
}

// NewOptionSet builds a set from the given options, preserving order.
func NewOptionSet(options ...Option) OptionSet {
	s := OptionSet{options: make([]Option, len(options))}
	copy(s.options, options)
	return s
}

// Add returns a new set with the given options appended.
func (s OptionSet) Add(options ...Option) OptionSet {
	merged := make([]Option, 0, len(s.options)+len(options))
	merged = append(merged, s.options...)
	merged = append(merged, options...)
	return OptionSet{options: merged}
}

// Remove returns a new set without the named options.
func (s OptionSet) Remove(names ...string) OptionSet {
	removed := make(map[string]bool, len(names))
	for _, name := range names {
		removed[name] = true
	}
	kept := make([]Option, 0, len(s.options))
	for _, opt := range s.options {
		if !removed[opt.Name] {
			kept = append(kept, opt)
		}
	}
	return OptionSet{options: kept}
}

// Require returns a new set with the named option marked required.
func (s OptionSet) Require(name string) OptionSet {
	options := make([]Option, len(s.options))
	copy(options, s.options)
	for i := range options {
		if options[i].Name == name {
			options[i].Required = true
		}
	}
	return OptionSet{options: options}
}

// Has reports whether the set declares the named option.
func (s OptionSet) Has(name string) bool {
	for _, opt := range s.options {
		if opt.Name == name {
			return true
		}
	}
	return false
}

// Names returns the declared option names in order.
func (s OptionSet) Names() []string {
	names := make([]string, len(s.options))
	for i, opt := range s.options {
		names[i] = opt.Name
	}
	return names
}

// Options returns a copy of the declarations in order.
func (s OptionSet) Options() []Option {
	options := make([]Option, len(s.options))
	copy(options, s.options)
	return options
}

// FilterOptions declares the filter group: the raw --filters JSON escape
// hatch plus one repeatable key=value flag per operator. All nine operator
// flags share ParseKeyValue; the operator rides along as metadata.
func FilterOptions() OptionSet {
	options := make([]Option, 0, len(Operators)+1)
	options = append(options, Option{Name: OptFilters, Description: filtersDescription, Kind: KindJSON})
	for _, op := range Operators {
		options = append(options, Option{
			Name:        op.Flag(),
			Description: op.Description(),
			Repeatable:  true,
			Kind:        KindKeyValue,
			Operator:    op,
		})
	}
	return NewOptionSet(options...)
}

// CriteriaOptions declares the non-filter criteria group: limit, skip,
// sort and field projection.
func CriteriaOptions() OptionSet {
	return NewOptionSet(
		Option{Name: OptLimit, Description: limitDescription, Kind: KindInt},
		Option{Name: OptSkip, Description: skipDescription, Kind: KindInt},
		Option{Name: OptSort, Description: sortDescription, Repeatable: true, Kind: KindSort},
		Option{Name: OptFields, Description: fieldsDescription, Kind: KindFieldList},
	)
}

// SearchOptions assembles the base search option set. Each group is
// toggleable as a unit.
func SearchOptions(filtering, criteria bool) OptionSet {
	s := NewOptionSet()
	if filtering {
		s = s.Add(FilterOptions().Options()...)
	}
	if criteria {
		s = s.Add(CriteriaOptions().Options()...)
	}
	return s
}

// UnitSearchOptions specializes the base search set for searching content
// units within a single repository, optionally bounded by association time.
// The two bounds are independent; no after/before range consistency is
// checked at this layer.
func UnitSearchOptions() OptionSet {
	return SearchOptions(true, true).Add(
		Option{Name: OptRepoID, Description: repoIDDescription, Required: true, Kind: KindString},
		Option{Name: OptAfter, Shorthand: "a", Description: afterDescription, Kind: KindTimestamp},
		Option{Name: OptBefore, Shorthand: "b", Description: beforeDescription, Kind: KindTimestamp},
	)
}

// UnitCopyOptions specializes the unit search set for copying the whole
// filtered set between two repositories: the criteria group and the single
// repository option are dropped, replaced by mandatory source and
// destination repository identifiers.
func UnitCopyOptions() OptionSet {
	return UnitSearchOptions().
		Remove(OptLimit, OptSkip, OptSort, OptFields).
		Remove(OptRepoID).
		Add(
			Option{Name: OptFromRepoID, Shorthand: "f", Description: fromRepoIDDesc, Required: true, Kind: KindString},
			Option{Name: OptToRepoID, Shorthand: "t", Description: toRepoIDDesc, Required: true, Kind: KindString},
		)
}

// UnitSearchAllOptions specializes the unit search set for listing without
// any filtering, sorting or projection; only limit and skip survive from
// the criteria group.
func UnitSearchAllOptions() OptionSet {
	return UnitSearchOptions().
		Remove(filterOptionNames()...).
		Remove(OptSort, OptFields)
}

func filterOptionNames() []string {
	names := make([]string, 0, len(Operators)+1)
	names = append(names, OptFilters)
	for _, op := range Operators {
		names = append(names, op.Flag())
	}
	return names
}
