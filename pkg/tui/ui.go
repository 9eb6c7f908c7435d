// Package tui is the interactive front-end: read-only buffers of
// rendered geralt output, a cursor, and vim-ish keys that turn into
// geralt invocations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/geraltui/pkg/app"
	"tableflip.dev/geraltui/pkg/task"
	"tableflip.dev/geraltui/pkg/tui/theme"
	"tableflip.dev/geraltui/pkg/view"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionAddRoot
	actionAddUnder
	actionAlias
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action

	buffers []*view.Buffer
	active  int

	input  textinput.Model
	status string

	// predecessor captured when an add-under insert begins
	pendingPred task.ID

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
	scroll     int

	th theme.Theme
}

// New creates a UI model over the Service with the main view open.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	return Model{
		svc:     svc,
		ctx:     context.Background(),
		mode:    modeNormal,
		action:  actionNone,
		buffers: []*view.Buffer{view.NewBuffer(view.MainView())},
		input:   ti,
		status:  "NORMAL: j/k move, enter tree, x toggle, a add, dd remove, = alias, r refresh, ? help",
		th:      theme.Default(),
	}
}

// current returns the active buffer. There is always at least the main
// buffer.
func (m *Model) current() *view.Buffer {
	return m.buffers[m.active]
}

type refreshRequestMsg struct{}

// Init triggers the first render.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return refreshRequestMsg{} }
}

// Update handles messages and keybindings. Every geralt round trip runs
// inline: the UI blocks until the subprocess exits, which is the whole
// synchronization model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case refreshRequestMsg:
		m.refresh()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.submitInsert()
			case "esc":
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				switch input {
				case "q", "quit", "exit":
					cmds = append(cmds, tea.Quit)
				case "":
					// nothing
				default:
					m.status = fmt.Sprintf("Unknown command: %s", input)
				}
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			cmds = append(cmds, m.normalKey(msg.String())...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) normalKey(key string) []tea.Cmd {
	var cmds []tea.Cmd
	b := m.current()

	switch key {
	case ":":
		m.enterCommandMode(&cmds)

	// movement
	case "j", "down":
		b.SetCursorLine(b.CursorLine() + 1)
	case "k", "up":
		if n := b.CursorLine(); n > 0 {
			b.SetCursorLine(n - 1)
		}
	case "g":
		b.SetCursorLine(0)
	case "G":
		b.SetCursorLine(len(b.Lines()) - 1)

	// buffers
	case "tab", "]":
		m.active = (m.active + 1) % len(m.buffers)
		m.scroll = 0
	case "[":
		m.active = (m.active - 1 + len(m.buffers)) % len(m.buffers)
		m.scroll = 0
	case "enter":
		m.openScoped()
	case "q":
		m.closeBuffer()

	// operations
	case "x":
		m.toggle()
	case "d":
		if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
			m.remove()
			m.awaitingDD = false
		} else {
			m.awaitingDD = true
			m.lastDTime = time.Now()
		}
	case "a", "o":
		m.enterInsert(&cmds, actionAdd, "New task description")
	case "A", "O":
		m.enterInsert(&cmds, actionAddRoot, "New root task description")
	case "p":
		line, col := b.CurrentLine()
		id, ok := task.ResolveID(line, col)
		if !ok {
			m.status = "No task on this line"
			break
		}
		m.pendingPred = id
		m.enterInsert(&cmds, actionAddUnder, fmt.Sprintf("New task under %d", id))
	case "=":
		if _, ok := cursorID(b); !ok {
			m.status = "No task on this line"
			break
		}
		m.enterInsert(&cmds, actionAlias, "Alias")
	case "-":
		m.unalias()

	case "r":
		m.refresh()
	case "?":
		m.mode = modeHelp
	}

	return cmds
}

func cursorID(b *view.Buffer) (task.ID, bool) {
	line, col := b.CurrentLine()
	return task.ResolveID(line, col)
}

func (m *Model) enterInsert(cmds *[]tea.Cmd, a action, placeholder string) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "COMMAND: :q to quit"
}

func (m *Model) submitInsert() {
	input := strings.TrimSpace(m.input.Value())
	prev := m.action
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()

	if input == "" {
		m.status = "Cancelled"
		return
	}

	b := m.current()
	var err error
	switch prev {
	case actionAdd:
		err = m.svc.Add(m.ctx, b, input, app.NoParent, 0)
	case actionAddRoot:
		err = m.svc.Add(m.ctx, b, input, app.AsRoot, 0)
	case actionAddUnder:
		err = m.svc.Add(m.ctx, b, input, app.WithPredecessor, m.pendingPred)
	case actionAlias:
		err = m.svc.Alias(m.ctx, b, input)
	}
	m.report(err, "Done")
}

func (m *Model) refresh() {
	m.report(m.svc.Refresh(m.ctx, m.current()), "Refreshed")
}

func (m *Model) toggle() {
	m.report(m.svc.Toggle(m.ctx, m.current()), "Toggled")
}

func (m *Model) remove() {
	m.report(m.svc.Remove(m.ctx, m.current()), "Removed; children of the task are orphaned")
}

func (m *Model) unalias() {
	m.report(m.svc.Unalias(m.ctx, m.current()), "Alias removed")
}

func (m *Model) openScoped() {
	nb, err := m.svc.OpenScoped(m.ctx, m.current())
	if err != nil {
		m.report(err, "")
		return
	}
	// Raise an existing buffer for the same root instead of opening a
	// duplicate.
	for i, b := range m.buffers {
		if b.Descriptor() == nb.Descriptor() {
			m.buffers[i] = nb
			m.active = i
			m.scroll = 0
			m.status = "Raised " + nb.Name()
			return
		}
	}
	m.buffers = append(m.buffers, nb)
	m.active = len(m.buffers) - 1
	m.scroll = 0
	m.status = "Opened " + nb.Name()
}

func (m *Model) closeBuffer() {
	if m.current().Descriptor().Kind == view.Main {
		m.status = "Use :q to quit"
		return
	}
	name := m.current().Name()
	m.buffers = append(m.buffers[:m.active], m.buffers[m.active+1:]...)
	if m.active >= len(m.buffers) {
		m.active = len(m.buffers) - 1
	}
	m.scroll = 0
	m.status = "Closed " + name
}

// report turns operation results into the status line. Lines that do
// not resolve to a task abort before any invocation; that is status
// text, not an error popup.
func (m *Model) report(err error, ok string) {
	switch {
	case err == nil:
		if ok != "" {
			m.status = ok
		}
	case errors.Is(err, app.ErrNoTaskAtCursor):
		m.status = "No task on this line"
	case errors.Is(err, task.ErrNoStateMarker):
		m.status = "No state marker on this line"
	default:
		m.status = "ERR: " + err.Error()
	}
}

// View renders the active buffer with the cursor line highlighted.
func (m Model) View() string {
	b := m.current()
	lines := b.Lines()
	cur := b.CursorLine()

	height := m.termHeight - 3
	if height < 5 {
		height = 5
	}
	if cur < m.scroll {
		m.scroll = cur
	}
	if cur >= m.scroll+height {
		m.scroll = cur - height + 1
	}
	top := m.scroll
	bottom := top + height
	if bottom > len(lines) {
		bottom = len(lines)
	}

	var sb strings.Builder
	for i := top; i < bottom; i++ {
		sb.WriteString(m.styleLine(lines[i], i == cur))
		sb.WriteString("\n")
	}
	body := sb.String()

	if m.mode == modeInsert {
		body += "\n" + m.insertPrompt() + m.input.View()
	}
	if m.mode == modeCommand {
		body += "\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: j/k move, g/G top/bottom, enter open tree view, q close view, " +
			"tab/[/] cycle views, x toggle completion, a add, A add root, p add under task, " +
			"dd remove (children are orphaned), = alias, - unalias, r refresh, :q quit"
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		body += "\n" + m.th.Help.Render(wordwrap.String(help, width))
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	name := m.th.BufferName.Render(fmt.Sprintf("%s (%d/%d)", b.Name(), m.active+1, len(m.buffers)))
	status := m.th.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	return body + "\n" + name + "  " + status
}

func (m Model) styleLine(line string, cursor bool) string {
	switch {
	case cursor:
		return m.th.CursorLine.Render(line)
	case task.IsHeader(line):
		return m.th.Header.Render(line)
	default:
		if st, err := task.ResolveState(line); err == nil && st == task.Completed {
			return m.th.Completed.Render(line)
		}
		return line
	}
}

func (m Model) insertPrompt() string {
	switch m.action {
	case actionAddRoot:
		return "Add root: "
	case actionAddUnder:
		return fmt.Sprintf("Add under %d: ", m.pendingPred)
	case actionAlias:
		return "Alias: "
	default:
		return "Add: "
	}
}

// Run opens the UI over the Service.
func Run(svc *app.Service) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("tui: stdout is not a terminal")
	}
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
