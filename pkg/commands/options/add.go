// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// AddOptions captures placement flags for the add command.
type AddOptions struct {
	Message     string
	Root        bool
	Predecessor string
}

// AddPlacementArgs wires the mutually exclusive placement flags.
func AddPlacementArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().BoolVar(&o.Root, "root", false,
		"Add the task as a new root.")
	cmd.Flags().StringVar(&o.Predecessor, "predecessor", "",
		"Add the task under the given predecessor id.")
}

// Validate rejects contradictory placement.
func (o *AddOptions) Validate() error {
	if o.Root && o.Predecessor != "" {
		return errors.New("--root and --predecessor are mutually exclusive")
	}
	return nil
}
