package command

import (
	"encoding/json"
	"fmt"
	"os"

	c "github.com/fkuep/pulpcore/cmd/helper"
	"github.com/fkuep/pulpcore/cmd/pulp/pulpc"
	"github.com/fkuep/pulpcore/pkg/errors"
	"github.com/fkuep/pulpcore/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type commandline struct {
	pulpc          pulpc.Client
	config         c.Options
	onError        func(msg interface{})
	outputRenderer func(pulpc.CommandOutput, *cobra.Command) error
}

func NewCommandLine() commandline {
	cl := commandline{}
	cl.outputRenderer = cl.renderOutputPlain
	return cl
}

func (cl *commandline) ConfigChain(post func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) (err error) {
	return func(cmd *cobra.Command, args []string) (err error) {
		cl.config.InitConfig("pulp")

		switch viper.GetString("output") {
		case "plain":
			cl.outputRenderer = cl.renderOutputPlain
		case "json":
			cl.outputRenderer = cl.renderOutputJson
		case "":
			// Do nothing
		default:
			return fmt.Errorf("invalid output format: '%s', available options: 'plain', 'json'", viper.GetString("output"))
		}

		if cl.pulpc == nil {
			cl.pulpc, err = pulpc.Init(pulpc.OptionsFromEnv(), nil, logger.New("pulp", os.Stderr))
			if err != nil {
				return err
			}
		}
		if post != nil {
			return post(cmd, args)
		}
		return nil
	}
}

// Register ...
func (cl *commandline) Register(rootCmd *cobra.Command) *cobra.Command {
	// repository search
	cl.repo(rootCmd)
	// content unit search, copy
	cl.unit(rootCmd)
	return rootCmd
}

func (cl *commandline) quit(msg interface{}) error {
	if cl.onError == nil {
		c.QuitToStdErr(msg)
	}
	cl.onError(msg)
	return nil
}

// reportQueryError keeps internal validation/parse disagreements from being
// presented as bad user input.
func (cl *commandline) reportQueryError(err error) error {
	if errors.IsUsage(err) {
		return errors.Wrap(err, "internal error, please report this as a bug")
	}
	return err
}

func (cl *commandline) renderOutputPlain(resp pulpc.CommandOutput, cmd *cobra.Command) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp.Plain())
	return nil
}

func (cl *commandline) renderOutputJson(resp pulpc.CommandOutput, cmd *cobra.Command) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", " ")
	err := enc.Encode(resp.Json())
	if err != nil {
		return cl.quit(fmt.Sprintf("ERROR: Failed to output json data: %v\n", err))
	}
	return nil
}
