package alias

import (
	"context"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Alias names a task.
type Alias struct {
	Invoker geralt.Invoker

	ID    task.ID
	Alias string
}

func (a *Alias) Do(ctx context.Context) error {
	if _, err := a.Invoker.Invoke(ctx, "alias", a.ID.String(), a.Alias); err != nil {
		return err
	}
	return printMain(ctx, a.Invoker)
}

// Unalias drops a task's name.
type Unalias struct {
	Invoker geralt.Invoker

	ID task.ID
}

func (u *Unalias) Do(ctx context.Context) error {
	if _, err := u.Invoker.Invoke(ctx, "unalias", u.ID.String()); err != nil {
		return err
	}
	return printMain(ctx, u.Invoker)
}

func printMain(ctx context.Context, inv geralt.Invoker) error {
	text, err := view.RenderMain(ctx, inv)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
