package list

import (
	"context"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/view"
)

// List prints the three-section overview to stdout.
type List struct {
	Invoker geralt.Invoker
}

func (l *List) Do(ctx context.Context) error {
	text, err := view.RenderMain(ctx, l.Invoker)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Text(text)
	return nil
}
