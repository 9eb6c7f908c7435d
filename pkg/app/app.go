// Package app provides the high-level operations shared by the CLI and
// the terminal UI. Every operation is one synchronous round trip: build
// argv, invoke geralt, re-render the view.
package app

import (
	"context"
	"errors"

	"tableflip.dev/geraltui/pkg/geralt"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

// Service wraps the geralt invoker so UIs and CLIs can share logic.
type Service struct {
	Invoker geralt.Invoker
}

var (
	ErrNoInvoker = errors.New("app: no invoker configured")

	// ErrNoTaskAtCursor reports that the current line does not denote a
	// task. Operations return it before any subprocess call is made.
	ErrNoTaskAtCursor = errors.New("app: no task on the current line")
)

// ParentMode selects how a new task is attached.
type ParentMode int

const (
	// NoParent adds the task with geralt's default placement.
	NoParent ParentMode = iota
	// AsRoot adds the task as a new root.
	AsRoot
	// WithPredecessor adds the task under the given predecessor.
	WithPredecessor
)

// AddArgs builds the argv tail for "geralt add".
func AddArgs(mode ParentMode, pred task.ID, description string) []string {
	switch mode {
	case AsRoot:
		return []string{"--root", description}
	case WithPredecessor:
		return []string{"--predecessor=" + pred.String(), description}
	default:
		return []string{description}
	}
}

// Add creates a task and refreshes the buffer.
func (s *Service) Add(ctx context.Context, b *view.Buffer, description string, mode ParentMode, pred task.ID) error {
	if s.Invoker == nil {
		return ErrNoInvoker
	}
	if _, err := s.Invoker.Invoke(ctx, "add", AddArgs(mode, pred, description)...); err != nil {
		return err
	}
	return view.Refresh(ctx, b, s.Invoker)
}

// Toggle flips the completion of the task under the cursor: check for
// inactive and in-progress tasks, uncheck for completed ones. Lines
// without a task id or a state marker abort before anything is invoked.
func (s *Service) Toggle(ctx context.Context, b *view.Buffer) error {
	if s.Invoker == nil {
		return ErrNoInvoker
	}
	id, ok := cursorTask(b)
	if !ok {
		return ErrNoTaskAtCursor
	}
	line, _ := b.CurrentLine()
	state, err := task.ResolveState(line)
	if err != nil {
		return err
	}
	sub := "check"
	if state == task.Completed {
		sub = "uncheck"
	}
	if _, err := s.Invoker.Invoke(ctx, sub, id.String()); err != nil {
		return err
	}
	return view.Refresh(ctx, b, s.Invoker)
}

// Remove deletes the task under the cursor. Children of the removed
// task are orphaned by geralt, not deleted.
func (s *Service) Remove(ctx context.Context, b *view.Buffer) error {
	return s.cursorOp(ctx, b, "rm")
}

// Alias attaches a human-readable alias to the task under the cursor.
func (s *Service) Alias(ctx context.Context, b *view.Buffer, alias string) error {
	if s.Invoker == nil {
		return ErrNoInvoker
	}
	id, ok := cursorTask(b)
	if !ok {
		return ErrNoTaskAtCursor
	}
	if _, err := s.Invoker.Invoke(ctx, "alias", id.String(), alias); err != nil {
		return err
	}
	return view.Refresh(ctx, b, s.Invoker)
}

// Unalias drops the alias of the task under the cursor.
func (s *Service) Unalias(ctx context.Context, b *view.Buffer) error {
	return s.cursorOp(ctx, b, "unalias")
}

// OpenScoped renders a new buffer rooted at the task under the cursor.
// No geralt mutation happens; the only invocation is the render itself.
func (s *Service) OpenScoped(ctx context.Context, b *view.Buffer) (*view.Buffer, error) {
	if s.Invoker == nil {
		return nil, ErrNoInvoker
	}
	id, ok := cursorTask(b)
	if !ok {
		return nil, ErrNoTaskAtCursor
	}
	nb := view.NewBuffer(view.ScopedView(id))
	if err := view.Refresh(ctx, nb, s.Invoker); err != nil {
		return nil, err
	}
	return nb, nil
}

// Refresh re-renders the buffer per its descriptor.
func (s *Service) Refresh(ctx context.Context, b *view.Buffer) error {
	if s.Invoker == nil {
		return ErrNoInvoker
	}
	return view.Refresh(ctx, b, s.Invoker)
}

func (s *Service) cursorOp(ctx context.Context, b *view.Buffer, sub string) error {
	if s.Invoker == nil {
		return ErrNoInvoker
	}
	id, ok := cursorTask(b)
	if !ok {
		return ErrNoTaskAtCursor
	}
	if _, err := s.Invoker.Invoke(ctx, sub, id.String()); err != nil {
		return err
	}
	return view.Refresh(ctx, b, s.Invoker)
}

func cursorTask(b *view.Buffer) (task.ID, bool) {
	line, col := b.CurrentLine()
	return task.ResolveID(line, col)
}
