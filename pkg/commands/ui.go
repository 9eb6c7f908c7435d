package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/geraltui/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
geraltui ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
