package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/runner/alias"
	"tableflip.dev/geraltui/pkg/task"
)

func addAlias(topLevel *cobra.Command) {
	var id task.ID
	var name string

	aliasCmd := &cobra.Command{
		Use:   "alias <id> <alias>",
		Short: "give a task a human-readable alias",
		Example: `
geraltui alias 42 kaer-morhen
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a task id and an alias")
			}
			var err error
			if id, err = task.ParseID(args[0]); err != nil {
				return err
			}
			name = args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := alias.Alias{Invoker: svc.Invoker, ID: id, Alias: name}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(aliasCmd)

	unaliasCmd := &cobra.Command{
		Use:   "unalias <id>",
		Short: "drop a task's alias",
		Example: `
geraltui unalias 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			var err error
			id, err = task.ParseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := alias.Unalias{Invoker: svc.Invoker, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(unaliasCmd)
}
