package view

import (
	"fmt"
	"strings"
)

// Buffer is the read-only text region a view renders into. Content is
// fully replaced on every refresh; the cursor is a rune offset into the
// content and survives replacement clamped to the new length.
type Buffer struct {
	desc     Descriptor
	content  []rune
	cursor   int
	readOnly bool
}

// NewBuffer returns an empty read-only buffer for the view.
func NewBuffer(d Descriptor) *Buffer {
	return &Buffer{desc: d, readOnly: true}
}

func (b *Buffer) Descriptor() Descriptor { return b.desc }
func (b *Buffer) Name() string           { return b.desc.Name() }
func (b *Buffer) Content() string        { return string(b.content) }
func (b *Buffer) Len() int               { return len(b.content) }
func (b *Buffer) Cursor() int            { return b.cursor }
func (b *Buffer) ReadOnly() bool         { return b.readOnly }

// SetCursor moves the cursor to the given rune offset. An offset outside
// the content is a programming error, not a recoverable condition.
func (b *Buffer) SetCursor(off int) {
	if off < 0 || off > len(b.content) {
		panic(fmt.Sprintf("view: cursor %d out of range 0..%d", off, len(b.content)))
	}
	b.cursor = off
}

// unlock lifts read-only for a content replacement and returns the
// function that restores it. Callers defer the restore so every exit
// path leaves the buffer read-only again.
func (b *Buffer) unlock() func() {
	b.readOnly = false
	return func() { b.readOnly = true }
}

// replace swaps in new content and re-clamps the cursor.
func (b *Buffer) replace(content string) {
	if b.readOnly {
		panic("view: replace on read-only buffer")
	}
	b.content = []rune(content)
	if b.cursor > len(b.content) {
		b.cursor = len(b.content)
	}
}

// Lines splits the content into lines without trailing newlines.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.content), "\n")
}

// CurrentLine returns the text of the line under the cursor and the
// cursor's column within it.
func (b *Buffer) CurrentLine() (line string, col int) {
	start := b.cursor
	for start > 0 && b.content[start-1] != '\n' {
		start--
	}
	end := b.cursor
	for end < len(b.content) && b.content[end] != '\n' {
		end++
	}
	return string(b.content[start:end]), b.cursor - start
}

// CursorLine returns the index of the line under the cursor.
func (b *Buffer) CursorLine() int {
	n := 0
	for _, r := range b.content[:b.cursor] {
		if r == '\n' {
			n++
		}
	}
	return n
}

// SetCursorLine puts the cursor at the start of line n, clamped to the
// available lines.
func (b *Buffer) SetCursorLine(n int) {
	if n < 0 {
		n = 0
	}
	off := 0
	for i := 0; i < len(b.content); i++ {
		if n == 0 {
			break
		}
		if b.content[i] == '\n' {
			n--
			off = i + 1
		}
	}
	b.cursor = off
}
