package remove

import (
	"context"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Remove deletes one task. geralt orphans its children rather than
// deleting them, and so does this.
type Remove struct {
	Invoker geralt.Invoker

	ID task.ID
}

func (r *Remove) Do(ctx context.Context) error {
	if _, err := r.Invoker.Invoke(ctx, "rm", r.ID.String()); err != nil {
		return err
	}

	text, err := view.RenderMain(ctx, r.Invoker)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
