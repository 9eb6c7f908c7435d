// Package printers writes rendered geralt text to the terminal with the
// section headers picked out.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/geraltui/pkg/task"
)

func init() {
	// fatih/color only checks NO_COLOR at its own init in newer
	// releases; respect it and CLICOLOR here regardless.
	if termenv.EnvNoColor() {
		color.NoColor = true
	}
}

type PrettyPrint struct{}

// Text prints rendered buffer text, bolding the "* " header lines.
func (pp *PrettyPrint) Text(text string) {
	h := color.New(color.Bold, color.Underline)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if task.IsHeader(line) {
			_, _ = h.Fprintln(color.Output, line)
			continue
		}
		_, _ = fmt.Fprintln(color.Output, line)
	}
}

// Title prints a one-off bold underlined header.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Legend prints the marker table for the key command.
func (pp *PrettyPrint) Legend(glyphs []task.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	b := color.New(color.Bold)
	tbl.AddRow(b.Sprint("Marker"), b.Sprint("Meaning"), b.Sprint("Key"))
	for _, g := range glyphs {
		tbl.AddRow(g.Marker, g.Meaning, g.Key)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
