package add

import (
	"context"

	"tableflip.dev/geraltui/pkg/app"
	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Add creates a task and prints the refreshed overview.
type Add struct {
	Invoker geralt.Invoker

	Message     string
	Root        bool
	Predecessor string
}

func (a *Add) Do(ctx context.Context) error {
	mode := app.NoParent
	var pred task.ID
	switch {
	case a.Root:
		mode = app.AsRoot
	case a.Predecessor != "":
		id, err := task.ParseID(a.Predecessor)
		if err != nil {
			return err
		}
		mode = app.WithPredecessor
		pred = id
	}

	if _, err := a.Invoker.Invoke(ctx, "add", app.AddArgs(mode, pred, a.Message)...); err != nil {
		return err
	}

	text, err := view.RenderMain(ctx, a.Invoker)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
