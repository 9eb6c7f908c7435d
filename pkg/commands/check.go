package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/runner/check"
	"tableflip.dev/geraltui/pkg/task"
)

func addCheck(topLevel *cobra.Command) {
	addCheckVariant(topLevel, "check", "mark a task completed", false)
	addCheckVariant(topLevel, "uncheck", "clear a task's completion", true)
}

func addCheckVariant(topLevel *cobra.Command, use, short string, uncheck bool) {
	var id task.ID

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Example: `
geraltui ` + use + ` 12
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
			s := check.Check{Invoker: svc.Invoker, ID: id, Uncheck: uncheck}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
