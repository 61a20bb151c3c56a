package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the text styles.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Name     lipgloss.Style
}

// DefaultTheme styles output for w. Color is dropped when w is not a
// terminal.
func DefaultTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle: r.NewStyle().Faint(true),
		Section:  r.NewStyle().Bold(true).Underline(true),
		Muted:    r.NewStyle().Faint(true),
		Success:  r.NewStyle().Foreground(lipgloss.Color("42")),
		Failure:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Name:     r.NewStyle().Width(nameWidth),
	}
}

// PlainTheme renders text unchanged apart from column padding.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Subtitle: plain,
		Section:  plain,
		Muted:    plain,
		Success:  plain,
		Failure:  plain,
		Name:     lipgloss.NewStyle().Width(nameWidth),
	}
}
