package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/geraltui/pkg/app"
	"tableflip.dev/geraltui/pkg/config"
	"tableflip.dev/geraltui/pkg/geralt"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "geraltui",
		Short: base.Wrap80("A front-end for the geralt task manager."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLs(topLevel)
	addTree(topLevel)
	addAdd(topLevel)
	addCheck(topLevel)
	addRm(topLevel)
	addAlias(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// newService loads config and resolves the geralt binary. Every command
// goes through here so a missing executable is reported once, up front.
func newService() (*app.Service, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	cli, err := geralt.New(c.Bin, c.Timeout)
	if err != nil {
		return nil, err
	}
	return &app.Service{Invoker: cli}, nil
}
