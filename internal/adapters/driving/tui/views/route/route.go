// Package route provides the route advisor view: a free-text route input
// and the templates suggested for it.
package route

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// View is the route advisor screen.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	advisor driving.RouteAdvisor
	input   *input.RouteInput
	list    *list.ItemList
	route   string
	width   int
	height  int
}

// NewView creates a route advisor view.
func NewView(s *styles.Styles, advisor driving.RouteAdvisor) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		advisor: advisor,
		input:   input.NewRouteInput(s),
		list:    list.NewItemList("Suggested templates", s),
		width:   80,
		height:  24,
	}
}

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Reset clears the input and suggestions.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.list.SetItems(nil)
	v.route = ""
}

// Suggest returns a command that asks the advisor for the route.
func (v *View) Suggest(route string) tea.Cmd {
	advisor := v.advisor
	return func() tea.Msg {
		if advisor == nil {
			return messages.SuggestCompleted{Route: route}
		}
		return messages.SuggestCompleted{Route: route, Templates: advisor.Suggest(route)}
	}
}

// Update handles messages for the route view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SuggestCompleted:
		v.route = msg.Route
		items := make([]list.Item, 0, len(msg.Templates))
		for _, name := range msg.Templates {
			items = append(items, list.Item{Title: name})
		}
		v.list.SetItems(items)
		if len(items) > 0 {
			v.input.Blur()
		}
		return v, nil

	case tea.KeyMsg:
		if v.input.Focused() {
			return v.updateInput(msg)
		}
		return v.updateList(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) updateInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case keymap.Matches(key, v.keymap.Suggest):
		return v, v.Suggest(v.input.Value())
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) updateList(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Select):
		item, ok := v.list.SelectedItem()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg { return messages.TemplateSelected{Name: item.Title} }
	}
	v.list, _ = v.list.Update(msg)
	return v, nil
}

// View renders the route advisor.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Route Advisor"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.list.Len() > 0 {
		route := v.route
		if strings.TrimSpace(route) == "" {
			route = "any route"
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("For %s:", route)))
		b.WriteString("\n")
		b.WriteString(v.list.View())
		b.WriteString("\n\n")
	}

	if v.input.Focused() {
		b.WriteString(v.styles.Help.Render("[Enter] Suggest  [Esc] Menu"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Fields  [Esc] Edit route"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.list.SetSize(width, height-8)
}

// Suggestions returns the listed template names.
func (v *View) Suggestions() []string {
	items := v.list.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

// InputFocused reports whether the route input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}
