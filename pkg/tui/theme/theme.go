// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles the buffer view uses.
type Theme struct {
	Header     lipgloss.Style
	CursorLine lipgloss.Style
	Completed  lipgloss.Style
	Status     lipgloss.Style
	BufferName lipgloss.Style
	Help       lipgloss.Style
}

// Default returns the built-in theme. The cursor-line background is the
// accent blended most of the way to black so the line reads as a bar
// without drowning the text.
func Default() Theme {
	accent, _ := colorful.Hex("#ff87d7")
	bar := accent.BlendLab(colorful.Color{R: 0, G: 0, B: 0}, 0.72)

	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		CursorLine: lipgloss.NewStyle().
			Background(lipgloss.Color(bar.Hex())),
		Completed:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BufferName: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}
