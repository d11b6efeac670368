// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours the styles are built from.
type Palette struct {
	// Accent marks titles and the selected row.
	Accent lipgloss.Color

	// Sea marks subtitles and field kinds.
	Sea lipgloss.Color

	// Deck is the status bar background.
	Deck lipgloss.Color

	// Ink is the default text colour.
	Ink lipgloss.Color

	// Slate is for hints and secondary text.
	Slate lipgloss.Color

	// Signal is for errors.
	Signal lipgloss.Color

	// Rule is the input border colour.
	Rule lipgloss.Color
}

// Harbour returns the default palette.
func Harbour() *Palette {
	return &Palette{
		Accent: lipgloss.Color("#2E86AB"),
		Sea:    lipgloss.Color("#3BB3A3"),
		Deck:   lipgloss.Color("#0F1B2A"),
		Ink:    lipgloss.Color("#DCE6F0"),
		Slate:  lipgloss.Color("#6B7F95"),
		Signal: lipgloss.Color("#E4572E"),
		Rule:   lipgloss.Color("#33475B"),
	}
}

// Styles holds the lipgloss styles used across views.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	// FieldName and FieldKind render a template field line.
	FieldName lipgloss.Style
	FieldKind lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles builds styles from a palette. A nil palette uses Harbour.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = Harbour()
	}

	return &Styles{
		palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.Sea),
		Normal:   lipgloss.NewStyle().Foreground(p.Ink),
		Muted:    lipgloss.NewStyle().Foreground(p.Slate),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Ink).Background(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Signal),
		Help:     lipgloss.NewStyle().Foreground(p.Slate),

		FieldName: lipgloss.NewStyle().Bold(true).Foreground(p.Ink),
		FieldKind: lipgloss.NewStyle().Italic(true).Foreground(p.Sea),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Rule).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Slate).
			Background(p.Deck).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles built from the Harbour palette.
func DefaultStyles() *Styles {
	return NewStyles(Harbour())
}

// Palette returns the colours behind these styles.
func (s *Styles) Palette() *Palette {
	return s.palette
}
