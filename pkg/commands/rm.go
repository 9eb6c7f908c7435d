package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/runner/remove"
	"tableflip.dev/geraltui/pkg/task"
)

func addRm(topLevel *cobra.Command) {
	var id task.ID

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "remove a task",
		Long: "Remove a single task. Children of the removed task are " +
			"orphaned by geralt, not deleted.",
		Example: `
geraltui rm 12
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
			s := remove.Remove{Invoker: svc.Invoker, ID: id}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
