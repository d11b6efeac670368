// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
)

// RouteInput wraps a bubbles textinput for free-text trade routes.
type RouteInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewRouteInput creates a focused route input.
func NewRouteInput(s *styles.Styles) *RouteInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. crude, Ras Tanura to Chiba"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &RouteInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blink.
func (r *RouteInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (r *RouteInput) Update(msg tea.Msg) (*RouteInput, tea.Cmd) {
	var cmd tea.Cmd
	r.textinput, cmd = r.textinput.Update(msg)
	return r, cmd
}

// View renders the route input.
func (r *RouteInput) View() string {
	label := r.styles.Title.Render("Route: ")
	field := r.styles.InputField.Render(r.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (r *RouteInput) Value() string {
	return r.textinput.Value()
}

// SetValue sets the input value.
func (r *RouteInput) SetValue(value string) {
	r.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (r *RouteInput) Focus() tea.Cmd {
	return r.textinput.Focus()
}

// Blur removes focus from the input.
func (r *RouteInput) Blur() {
	r.textinput.Blur()
}

// Focused returns whether the input is focused.
func (r *RouteInput) Focused() bool {
	return r.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label.
func (r *RouteInput) SetWidth(width int) {
	r.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	r.textinput.Width = inputWidth
}

// Width returns the current width.
func (r *RouteInput) Width() int {
	return r.width
}

// Reset clears the input.
func (r *RouteInput) Reset() {
	r.textinput.Reset()
}
