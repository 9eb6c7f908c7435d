package key

import (
	"context"

	"tableflip.dev/geraltui/pkg/printers"
	"tableflip.dev/geraltui/pkg/task"
)

// Key prints the rendered-text marker legend.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Markers")
	pp.Legend(task.DefaultGlyphs())
	return nil
}
