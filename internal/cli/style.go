package cli

import (
	"io"

	"github.com/calvinalkan/jane/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are the lipgloss styles used for command output.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
	Header  lipgloss.Style
	Row     lipgloss.Style
	Done    lipgloss.Style
}

// NewStyles returns styles bound to a renderer for w.
//
// In [config.ColorAuto] mode the renderer detects color support from w, so
// anything that is not a color terminal gets plain text.
func NewStyles(w io.Writer, mode string) Styles {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Notice:  r.NewStyle().Foreground(lipgloss.Color("11")),
		Header:  r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Row:     r.NewStyle().Foreground(lipgloss.Color("4")),
		Done:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
