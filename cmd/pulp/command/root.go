/*
Copyright 2019-2020 vChain, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"github.com/spf13/cobra"
)

// NewCmd ...
func (cl *commandline) NewCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "pulp",
		Short: "CLI search client for the pulp content server",
		Long: `CLI search client for the pulp content server.

Environment variables:
  PULP_SERVER_ADDRESS=127.0.0.1
  PULP_SERVER_PORT=24817
  PULP_OUTPUT=plain`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: cl.ConfigChain(nil),
	}
	if err := cl.configureFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
