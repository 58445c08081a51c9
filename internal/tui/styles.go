package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
}

// newStyles binds the styles to out so colour detection follows the actual
// writer instead of os.Stdout. Only single-line strings are rendered:
// lipgloss pads multi-line blocks to equal width.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		title:   r.NewStyle().Bold(true),
		help:    r.NewStyle().Faint(true),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
