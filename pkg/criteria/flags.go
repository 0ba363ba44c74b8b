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
	"encoding/json"

	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Register binds every option of the set onto the given flag set.
// Repeatable options use string arrays so flag occurrence order survives
// into Collect.
func (s OptionSet) Register(flags *pflag.FlagSet) {
	for _, opt := range s.options {
		switch {
		case opt.Kind == KindInt:
			flags.IntP(opt.Name, opt.Shorthand, 0, opt.Description)
		case opt.Repeatable:
			flags.StringArrayP(opt.Name, opt.Shorthand, nil, opt.Description)
		default:
			flags.StringP(opt.Name, opt.Shorthand, "", opt.Description)
		}
	}
}

// MarkRequired applies the Required declarations to a command whose flags
// the set was registered on.
func (s OptionSet) MarkRequired(cmd *cobra.Command) error {
	for _, opt := range s.options {
		if !opt.Required {
			continue
		}
		if err := cmd.MarkFlagRequired(opt.Name); err != nil {
			return err
		}
	}
	return nil
}

// Collect reads the values the user supplied for this option set and
// assembles the normalized query. Only flags that were actually set
// populate the query; every value is validated before it is trusted.
func (s OptionSet) Collect(flags *pflag.FlagSet) (*Query, error) {
	q := &Query{}
	for _, opt := range s.options {
		if !flags.Changed(opt.Name) {
			continue
		}

		switch opt.Kind {
		case KindJSON:
			raw, err := flags.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			var expr interface{}
			if err := json.Unmarshal([]byte(raw), &expr); err != nil {
				return nil, errors.Wrap(err, ErrInvalidFilterExpression)
			}
			q.Filters.Raw = expr

		case KindKeyValue:
			args, err := flags.GetStringArray(opt.Name)
			if err != nil {
				return nil, err
			}
			terms, err := ParseKeyValue(args)
			if err != nil {
				return nil, err
			}
			for _, term := range terms {
				q.Filters.Composed = append(q.Filters.Composed, Filter{
					Operator: opt.Operator,
					Field:    term.Field,
					Value:    term.Value,
				})
			}

		case KindInt:
			n, err := flags.GetInt(opt.Name)
			if err != nil {
				return nil, err
			}
			switch opt.Name {
			case OptLimit:
				if n <= 0 {
					return nil, errors.New(ErrNonPositiveLimit)
				}
				q.Limit = &n
			case OptSkip:
				if n < 0 {
					return nil, errors.New(ErrNegativeSkip)
				}
				q.Skip = &n
			}

		case KindSort:
			args, err := flags.GetStringArray(opt.Name)
			if err != nil {
				return nil, err
			}
			if err := ValidateSort(args); err != nil {
				return nil, err
			}
			sort, err := ParseSort(args)
			if err != nil {
				return nil, err
			}
			q.Sort = sort

		case KindFieldList:
			raw, err := flags.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			q.Fields = ParseFields(raw)

		case KindTimestamp:
			raw, err := flags.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			ts, err := ParseTimestamp(raw)
			if err != nil {
				return nil, err
			}
			switch opt.Name {
			case OptAfter:
				q.After = &ts
			case OptBefore:
				q.Before = &ts
			}

		case KindString:
			value, err := flags.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			switch opt.Name {
			case OptRepoID:
				q.RepoID = value
			case OptFromRepoID:
				q.FromRepoID = value
			case OptToRepoID:
				q.ToRepoID = value
			}
		}
	}
	return q, nil
}
