package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/runner/list"
)

func addLs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "print the task overview",
		Long: "Print the three-section overview: geralt's unscoped listing, " +
			"the flat list, and the date-ordered list.",
		Example: `
geraltui ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := list.List{Invoker: svc.Invoker}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
