package check

import (
	"context"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Check marks a task complete, or clears the mark with Uncheck set.
type Check struct {
	Invoker geralt.Invoker

	ID      task.ID
	Uncheck bool
}

func (c *Check) Do(ctx context.Context) error {
	sub := "check"
	if c.Uncheck {
		sub = "uncheck"
	}
	if _, err := c.Invoker.Invoke(ctx, sub, c.ID.String()); err != nil {
		return err
	}

	text, err := view.RenderMain(ctx, c.Invoker)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
