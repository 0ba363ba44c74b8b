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

package command

import (
	"github.com/fkuep/pulpcore/pkg/criteria"
	"github.com/spf13/cobra"
)

const searchUsage = `These are basic filtering options that will be AND'd together.
These will be ignored if --filters is specified. Any filter option may be
specified multiple times. The value for each option should be a field name
and value to match against, specified as "name=value".
Example: $ pulp repo search --gt='content_unit_count=0'`

func (cl *commandline) repo(cmd *cobra.Command) {
	repoCmd := &cobra.Command{
		Use:     "repo",
		Short:   "Issue all repository commands",
		Aliases: []string{"r"},
	}

	searchOpts := criteria.SearchOptions(true, true)
	searchCmd := &cobra.Command{
		Use:     "search",
		Short:   "Search repositories while optionally specifying sort, limit, skip, and requested fields",
		Long:    searchUsage,
		Aliases: []string{"s"},
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := searchOpts.Collect(cmd.Flags())
			if err != nil {
				return cl.reportQueryError(err)
			}
			resp, err := cl.pulpc.SearchRepositories(cmd.Context(), q)
			if err != nil {
				return err
			}
			return cl.outputRenderer(resp, cmd)
		},
		Args: cobra.ExactArgs(0),
	}
	searchOpts.Register(searchCmd.Flags())
	if err := searchOpts.MarkRequired(searchCmd); err != nil {
		cl.quit(err)
	}
	repoCmd.AddCommand(searchCmd)
	cmd.AddCommand(repoCmd)
}
