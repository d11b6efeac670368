package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarbour(t *testing.T) {
	p := Harbour()

	require.NotNil(t, p)
	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{p.Accent, p.Sea, p.Deck, p.Ink, p.Slate, p.Signal, p.Rule} {
		assert.NotEmpty(t, string(c))
		assert.False(t, seen[c], "duplicate colour %s", c)
		seen[c] = true
	}
}

func TestNewStyles(t *testing.T) {
	p := Harbour()

	assert.Equal(t, p, NewStyles(p).Palette())
	assert.Equal(t, Harbour(), NewStyles(nil).Palette())
}

func TestStyles_AllInitialised(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":      s.Title,
		"Subtitle":   s.Subtitle,
		"Normal":     s.Normal,
		"Muted":      s.Muted,
		"Selected":   s.Selected,
		"Error":      s.Error,
		"Help":       s.Help,
		"FieldName":  s.FieldName,
		"FieldKind":  s.FieldKind,
		"InputField": s.InputField,
		"StatusBar":  s.StatusBar,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
	}
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.FieldName.Render("Laytime"), "Laytime")
	assert.Contains(t, s.FieldKind.Render("clause"), "clause")
}
