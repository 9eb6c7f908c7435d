package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/runner/tree"
	"tableflip.dev/geraltui/pkg/task"
)

func addTree(topLevel *cobra.Command) {
	var root task.ID

	cmd := &cobra.Command{
		Use:   "tree <id>",
		Short: "print the subtree under a task",
		Example: `
geraltui tree 42
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			var err error
			root, err = task.ParseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := tree.Tree{Invoker: svc.Invoker, Root: root}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
