package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"tableflip.dev/geraltui/pkg/app"
	"tableflip.dev/geraltui/pkg/view"
)

type fakeInvoker struct {
	mu    sync.Mutex
	out   map[string]string
	calls [][]string
}

func newFakeInvoker() *fakeInvoker {
	return &fakeInvoker{out: map[string]string{}}
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

func newTestModel(t *testing.T) (*Model, *fakeInvoker) {
	t.Helper()
	inv := newFakeInvoker()
	inv.set("", "[ ] (1) first\n[x] (2) second\n")
	inv.set("ls", "[ ] (1) first\n[x] (2) second\n")
	inv.set("lsd", "[ ] (1) first\n")
	inv.set("tree 1", "[ ] (1) first\n  [ ] (3) nested\n")

	m := New(&app.Service{Invoker: inv})
	m.refresh()
	return &m, inv
}

func TestInitialRefreshRendersMainSections(t *testing.T) {
	m, inv := newTestModel(t)
	content := m.current().Content()
	for _, header := range []string{"* geralt", "* ls", "* lsd"} {
		if !strings.Contains(content, header) {
			t.Fatalf("expected header %q in %q", header, content)
		}
	}
	got := inv.argv()
	if len(got) != 3 || got[0] != "" || got[1] != "ls" || got[2] != "lsd" {
		t.Fatalf("expected [<none> ls lsd], got %v", got)
	}
}

func TestToggleOnTaskLineIssuesCheck(t *testing.T) {
	m, inv := newTestModel(t)
	m.current().SetCursorLine(1) // "[ ] (1) first"
	m.toggle()
	var found bool
	for _, c := range inv.argv() {
		if c == "check 1" {
			found = true
		}
		if strings.HasPrefix(c, "uncheck") {
			t.Fatalf("unexpected uncheck: %v", inv.argv())
		}
	}
	if !found {
		t.Fatalf("expected check 1 in %v", inv.argv())
	}
}

func TestToggleOnCompletedLineIssuesUncheck(t *testing.T) {
	m, inv := newTestModel(t)
	m.current().SetCursorLine(2) // "[x] (2) second"
	m.toggle()
	var found bool
	for _, c := range inv.argv() {
		if c == "uncheck 2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected uncheck 2 in %v", inv.argv())
	}
}

func TestToggleOnHeaderLineIsStatusOnly(t *testing.T) {
	m, inv := newTestModel(t)
	m.current().SetCursorLine(0) // "* geralt"
	before := len(inv.calls)
	m.toggle()
	if len(inv.calls) != before {
		t.Fatalf("header line must not invoke geralt")
	}
	if m.status != "No task on this line" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestOpenAndCloseScopedBuffer(t *testing.T) {
	m, _ := newTestModel(t)
	m.current().SetCursorLine(1)
	m.openScoped()
	if len(m.buffers) != 2 || m.active != 1 {
		t.Fatalf("expected second buffer active, got %d/%d", m.active, len(m.buffers))
	}
	if m.current().Descriptor() != view.ScopedView(1) {
		t.Fatalf("unexpected descriptor %#v", m.current().Descriptor())
	}
	if !strings.Contains(m.current().Content(), "(3) nested") {
		t.Fatalf("unexpected scoped content %q", m.current().Content())
	}

	m.closeBuffer()
	if len(m.buffers) != 1 || m.current().Descriptor() != view.MainView() {
		t.Fatalf("expected to fall back to main view")
	}
}

func TestOpenScopedTwiceRaisesExistingBuffer(t *testing.T) {
	m, _ := newTestModel(t)
	m.current().SetCursorLine(1)
	m.openScoped()
	m.active = 0
	m.current().SetCursorLine(1)
	m.openScoped()
	if len(m.buffers) != 2 {
		t.Fatalf("expected raise, not duplicate: %d buffers", len(m.buffers))
	}
	if m.active != 1 {
		t.Fatalf("expected scoped buffer active")
	}
}

func TestCloseMainBufferHints(t *testing.T) {
	m, _ := newTestModel(t)
	m.closeBuffer()
	if len(m.buffers) != 1 {
		t.Fatalf("main buffer must not close")
	}
	if m.status != "Use :q to quit" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSubmitAliasGoesThroughService(t *testing.T) {
	m, inv := newTestModel(t)
	m.current().SetCursorLine(1)
	m.action = actionAlias
	m.mode = modeInsert
	m.input.SetValue("gwent")
	m.submitInsert()
	var found bool
	for _, c := range inv.argv() {
		if c == "alias 1 gwent" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected alias 1 gwent in %v", inv.argv())
	}
	if m.mode != modeNormal {
		t.Fatalf("expected to return to normal mode")
	}
}

func TestSubmitAddUnderUsesPendingPredecessor(t *testing.T) {
	m, inv := newTestModel(t)
	m.pendingPred = 2
	m.action = actionAddUnder
	m.mode = modeInsert
	m.input.SetValue("new thing")
	m.submitInsert()
	var found bool
	for _, c := range inv.argv() {
		if c == "add --predecessor=2 new thing" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected predecessor add in %v", inv.argv())
	}
}

func TestViewShowsStatusAndBufferName(t *testing.T) {
	m, _ := newTestModel(t)
	m.termWidth = 80
	m.termHeight = 24
	out := m.View()
	if !strings.Contains(out, "*geralt*") {
		t.Fatalf("expected buffer name in view: %q", out)
	}
	if !strings.Contains(out, "NORMAL") {
		t.Fatalf("expected mode in view: %q", out)
	}
}

func TestBuffersStayReadOnly(t *testing.T) {
	m, _ := newTestModel(t)
	m.current().SetCursorLine(1)
	m.toggle()
	m.refresh()
	for _, b := range m.buffers {
		if !b.ReadOnly() {
			t.Fatalf("buffer %s lost read-only", b.Name())
		}
	}
}
