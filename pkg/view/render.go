package view

import (
	"context"
	"strings"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/task"
)

// The three sections of the main view, in the order they are rendered.
// The empty subcommand is geralt's own unscoped listing.
var mainSections = []struct {
	header string
	sub    string
}{
	{"* geralt", ""},
	{"* ls", "ls"},
	{"* lsd", "lsd"},
}

// RenderMain produces the overview text: three labeled sections, one
// geralt invocation each.
func RenderMain(ctx context.Context, inv geralt.Invoker) (string, error) {
	var sb strings.Builder
	for _, s := range mainSections {
		out, err := inv.Invoke(ctx, s.sub)
		if err != nil {
			return "", err
		}
		sb.WriteString(s.header)
		sb.WriteString("\n")
		sb.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// RenderScoped produces the subtree text for one root task, no header.
func RenderScoped(ctx context.Context, root task.ID, inv geralt.Invoker) (string, error) {
	return inv.Invoke(ctx, "tree", root.String())
}

// Refresh re-renders the buffer per its descriptor, replaces the whole
// content, and restores the cursor to the same rune offset clamped to
// the new length. The buffer stays read-only on every exit path; the
// lock is lifted only around the replacement itself. A failed
// invocation leaves the prior content untouched.
func Refresh(ctx context.Context, b *Buffer, inv geralt.Invoker) error {
	var text string
	var err error
	switch b.Descriptor().Kind {
	case Scoped:
		text, err = RenderScoped(ctx, b.Descriptor().Root, inv)
	default:
		text, err = RenderMain(ctx, inv)
	}
	if err != nil {
		return err
	}

	restore := b.unlock()
	defer restore()
	b.replace(text)
	return nil
}
