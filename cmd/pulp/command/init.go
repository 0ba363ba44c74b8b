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
	"github.com/fkuep/pulpcore/cmd/pulp/pulpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func (cl *commandline) configureFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().StringP("server-address", "s", pulpc.DefaultOptions().Address, "pulp server host address")
	cmd.PersistentFlags().IntP("server-port", "p", pulpc.DefaultOptions().Port, "pulp server port number")
	cmd.PersistentFlags().StringVar(&cl.config.CfgFn, "config", "", "config file (default path are configs or $HOME. Default filename is pulp.toml)")
	cmd.PersistentFlags().String("output", pulpc.DefaultOptions().Output, "command output format (plain or json)")

	if err := viper.BindPFlag("server-address", cmd.PersistentFlags().Lookup("server-address")); err != nil {
		return err
	}
	if err := viper.BindPFlag("server-port", cmd.PersistentFlags().Lookup("server-port")); err != nil {
		return err
	}
	if err := viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output")); err != nil {
		return err
	}

	viper.SetDefault("server-address", pulpc.DefaultOptions().Address)
	viper.SetDefault("server-port", pulpc.DefaultOptions().Port)
	viper.SetDefault("output", pulpc.DefaultOptions().Output)
	return nil
}
