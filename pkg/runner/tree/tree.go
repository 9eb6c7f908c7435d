package tree

import (
	"context"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Tree prints the subtree under one root task.
type Tree struct {
	Invoker geralt.Invoker
	Root    task.ID
}

func (t *Tree) Do(ctx context.Context) error {
	text, err := view.RenderScoped(ctx, t.Root, t.Invoker)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
