package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/geraltui/pkg/commands/options"
	"tableflip.dev/geraltui/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "add a task",
		Example: `
geraltui add sharpen the silver sword
geraltui add --root contracts
geraltui add --predecessor=42 collect the reward
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task description")
			}
			ao.Message = strings.Join(args, " ")
			return ao.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := add.Add{
				Invoker:     svc.Invoker,
				Message:     ao.Message,
				Root:        ao.Root,
				Predecessor: ao.Predecessor,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPlacementArgs(cmd, ao)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
