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
	"context"

	"github.com/fkuep/pulpcore/cmd/pulp/pulpc"
	"github.com/fkuep/pulpcore/pkg/criteria"
	"github.com/spf13/cobra"
)

func (cl *commandline) unit(cmd *cobra.Command) {
	unitCmd := &cobra.Command{
		Use:       "unit",
		Short:     "Issue all content unit commands",
		Aliases:   []string{"u"},
		ValidArgs: []string{"search", "search-all", "copy"},
	}

	unitCmd.AddCommand(cl.unitSearch())
	unitCmd.AddCommand(cl.unitSearchAll())
	unitCmd.AddCommand(cl.unitCopy())
	cmd.AddCommand(unitCmd)
}

func (cl *commandline) unitSearch() *cobra.Command {
	opts := criteria.UnitSearchOptions()
	searchCmd := &cobra.Command{
		Use:     "search",
		Short:   "Search content units within a repository, optionally bounded by association time",
		Long:    searchUsage,
		Aliases: []string{"s"},
		RunE: cl.runQuery(opts, func(ctx context.Context, q *criteria.Query) (pulpc.CommandOutput, error) {
			return cl.pulpc.SearchUnits(ctx, q)
		}),
		Args: cobra.ExactArgs(0),
	}
	opts.Register(searchCmd.Flags())
	if err := opts.MarkRequired(searchCmd); err != nil {
		cl.quit(err)
	}
	return searchCmd
}

func (cl *commandline) unitSearchAll() *cobra.Command {
	opts := criteria.UnitSearchAllOptions()
	searchAllCmd := &cobra.Command{
		Use:   "search-all",
		Short: "List all content units within a repository, optionally bounded by association time",
		RunE: cl.runQuery(opts, func(ctx context.Context, q *criteria.Query) (pulpc.CommandOutput, error) {
			return cl.pulpc.SearchAllUnits(ctx, q)
		}),
		Args: cobra.ExactArgs(0),
	}
	opts.Register(searchAllCmd.Flags())
	if err := opts.MarkRequired(searchAllCmd); err != nil {
		cl.quit(err)
	}
	return searchAllCmd
}

func (cl *commandline) unitCopy() *cobra.Command {
	opts := criteria.UnitCopyOptions()
	copyCmd := &cobra.Command{
		Use:     "copy",
		Short:   "Copy the whole filtered set of content units between two repositories",
		Long:    searchUsage,
		Aliases: []string{"cp"},
		RunE: cl.runQuery(opts, func(ctx context.Context, q *criteria.Query) (pulpc.CommandOutput, error) {
			return cl.pulpc.CopyUnits(ctx, q)
		}),
		Args: cobra.ExactArgs(0),
	}
	opts.Register(copyCmd.Flags())
	if err := opts.MarkRequired(copyCmd); err != nil {
		cl.quit(err)
	}
	return copyCmd
}

// runQuery collects the command's option set into a query and hands it to
// the given client call.
func (cl *commandline) runQuery(
	opts criteria.OptionSet,
	call func(context.Context, *criteria.Query) (pulpc.CommandOutput, error),
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		q, err := opts.Collect(cmd.Flags())
		if err != nil {
			return cl.reportQueryError(err)
		}
		resp, err := call(cmd.Context(), q)
		if err != nil {
			return err
		}
		return cl.outputRenderer(resp, cmd)
	}
}
