package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/view"
)

type fakeInvoker struct {
	mu    sync.Mutex
	out   map[string]string
	fail  map[string]error
	calls [][]string
}

func newFakeInvoker() *fakeInvoker {
	return &fakeInvoker{out: map[string]string{}, fail: map[string]error{}}
}

func (f *fakeInvoker) set(key, out string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out[key] = out
}

func (f *fakeInvoker) Invoke(_ context.Context, sub string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{sub}, args...))
	if err := f.fail[sub]; err != nil {
		return "", err
	}
	key := sub
	if len(args) > 0 {
		key = sub + " " + strings.Join(args, " ")
	}
	if out, ok := f.out[key]; ok {
		return out, nil
	}
	return f.out[sub], nil
}

func (f *fakeInvoker) argv() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, strings.TrimSpace(strings.Join(c, " ")))
	}
	return out
}

func (f *fakeInvoker) mutations() []string {
	var out []string
	for _, c := range f.argv() {
		switch {
		case c == "", c == "ls", c == "lsd", strings.HasPrefix(c, "tree "):
		default:
			out = append(out, c)
		}
	}
	return out
}

// scopedBuffer renders a scoped buffer over the fake and moves the
// cursor to the requested line.
func scopedBuffer(t *testing.T, inv *fakeInvoker, root task.ID, content string, line int) *view.Buffer {
	t.Helper()
	inv.set("tree "+root.String(), content)
	b := view.NewBuffer(view.ScopedView(root))
	if err := view.Refresh(context.Background(), b, inv); err != nil {
		t.Fatalf("render: %v", err)
	}
	b.SetCursorLine(line)
	return b
}

func TestToggleChecksOpenTask(t *testing.T) {
	for _, marker := range []string{"[ ]", "[~]"} {
		inv := newFakeInvoker()
		b := scopedBuffer(t, inv, 5, marker+" (5) something\n", 0)
		svc := &Service{Invoker: inv}

		if err := svc.Toggle(context.Background(), b); err != nil {
			t.Fatalf("marker %s: unexpected error %v", marker, err)
		}
		if got := inv.mutations(); len(got) != 1 || got[0] != "check 5" {
			t.Fatalf("marker %s: expected [check 5], got %v", marker, got)
		}
	}
}

func TestToggleUnchecksCompletedTask(t *testing.T) {
	for _, marker := range []string{"[x]", "[*]"} {
		inv := newFakeInvoker()
		b := scopedBuffer(t, inv, 5, marker+" (5) something\n", 0)
		svc := &Service{Invoker: inv}

		if err := svc.Toggle(context.Background(), b); err != nil {
			t.Fatalf("marker %s: unexpected error %v", marker, err)
		}
		if got := inv.mutations(); len(got) != 1 || got[0] != "uncheck 5" {
			t.Fatalf("marker %s: expected [uncheck 5], got %v", marker, got)
		}
	}
}

func TestToggleAbortsBeforeInvokeOnHeaderLine(t *testing.T) {
	inv := newFakeInvoker()
	b := scopedBuffer(t, inv, 5, "* geralt\n[ ] (5) something\n", 0)
	svc := &Service{Invoker: inv}
	before := len(inv.calls)

	if err := svc.Toggle(context.Background(), b); !errors.Is(err, ErrNoTaskAtCursor) {
		t.Fatalf("expected ErrNoTaskAtCursor, got %v", err)
	}
	if len(inv.calls) != before {
		t.Fatalf("no invocation may happen for an unresolvable line")
	}
}

func TestToggleAbortsWithoutStateMarker(t *testing.T) {
	inv := newFakeInvoker()
	b := scopedBuffer(t, inv, 5, "(5) bare reference\n", 0)
	svc := &Service{Invoker: inv}
	before := len(inv.calls)

	if err := svc.Toggle(context.Background(), b); !errors.Is(err, task.ErrNoStateMarker) {
		t.Fatalf("expected ErrNoStateMarker, got %v", err)
	}
	if len(inv.calls) != before {
		t.Fatalf("no invocation may happen without a state marker")
	}
}

func TestRemoveIssuesSingleRm(t *testing.T) {
	inv := newFakeInvoker()
	content := "[ ] (12) parent\n  [ ] (13) child\n"
	b := scopedBuffer(t, inv, 12, content, 0)
	svc := &Service{Invoker: inv}

	if err := svc.Remove(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := inv.mutations()
	if len(got) != 1 || got[0] != "rm 12" {
		t.Fatalf("expected exactly [rm 12], no recursive removal, got %v", got)
	}
}

func TestAliasAndUnalias(t *testing.T) {
	inv := newFakeInvoker()
	b := scopedBuffer(t, inv, 9, "[ ] (9) something\n", 0)
	svc := &Service{Invoker: inv}

	if err := svc.Alias(context.Background(), b, "witcher"); err != nil {
		t.Fatalf("alias: %v", err)
	}
	if err := svc.Unalias(context.Background(), b); err != nil {
		t.Fatalf("unalias: %v", err)
	}
	got := inv.mutations()
	if len(got) != 2 || got[0] != "alias 9 witcher" || got[1] != "unalias 9" {
		t.Fatalf("unexpected mutations %v", got)
	}
}

func TestAddArgs(t *testing.T) {
	tests := []struct {
		mode ParentMode
		pred task.ID
		want string
	}{
		{NoParent, 0, "new thing"},
		{AsRoot, 0, "--root new thing"},
		{WithPredecessor, 4, "--predecessor=4 new thing"},
	}
	for _, tc := range tests {
		got := strings.Join(AddArgs(tc.mode, tc.pred, "new thing"), " ")
		if got != tc.want {
			t.Fatalf("mode %v: expected %q, got %q", tc.mode, tc.want, got)
		}
	}
}

func TestAddInvokesAndRefreshes(t *testing.T) {
	inv := newFakeInvoker()
	inv.set("", "top\n")
	inv.set("ls", "flat\n")
	inv.set("lsd", "dated\n")

	b := view.NewBuffer(view.MainView())
	svc := &Service{Invoker: inv}
	if err := svc.Add(context.Background(), b, "slay a drowner", WithPredecessor, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := inv.mutations(); len(got) != 1 || got[0] != "add --predecessor=3 slay a drowner" {
		t.Fatalf("unexpected mutations %v", got)
	}
	if !strings.Contains(b.Content(), "* lsd") {
		t.Fatalf("add must refresh the buffer, got %q", b.Content())
	}
}

func TestOpenScopedRendersTreeBuffer(t *testing.T) {
	inv := newFakeInvoker()
	b := scopedBuffer(t, inv, 1, "[ ] (7) the one\n", 0)
	inv.set("tree 7", "[ ] (7) the one\n  [ ] (8) below\n")
	svc := &Service{Invoker: inv}

	nb, err := svc.OpenScoped(context.Background(), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nb.Descriptor() != view.ScopedView(7) {
		t.Fatalf("expected scoped descriptor for 7, got %#v", nb.Descriptor())
	}
	if got := inv.mutations(); len(got) != 0 {
		t.Fatalf("open scoped is local-only, got mutations %v", got)
	}
	if !strings.Contains(nb.Content(), "(8) below") {
		t.Fatalf("unexpected scoped content %q", nb.Content())
	}
}

func TestOperationFailureLeavesBufferIntact(t *testing.T) {
	inv := newFakeInvoker()
	b := scopedBuffer(t, inv, 5, "[ ] (5) something\n", 0)
	svc := &Service{Invoker: inv}

	inv.fail["check"] = errors.New("geralt check 5: no such task")
	before := b.Content()
	if err := svc.Toggle(context.Background(), b); err == nil {
		t.Fatalf("expected error")
	}
	if b.Content() != before {
		t.Fatalf("failed operation must leave prior view state intact")
	}
}

func TestNilInvokerGuard(t *testing.T) {
	svc := &Service{}
	b := view.NewBuffer(view.MainView())
	if err := svc.Refresh(context.Background(), b); !errors.Is(err, ErrNoInvoker) {
		t.Fatalf("expected ErrNoInvoker, got %v", err)
	}
}
