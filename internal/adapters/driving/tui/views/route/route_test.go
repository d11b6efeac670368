package route

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/core/services"
)

func newAdvisor() *services.RouteAdvisor {
	return services.NewRouteAdvisor(services.NewCatalog(nil))
}

func typeRoute(v *View, route string) {
	for _, r := range route {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestView_SuggestFromInput(t *testing.T) {
	view := NewView(nil, newAdvisor())
	view.Init()
	typeRoute(view, "Persian Gulf")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	done, ok := cmd().(messages.SuggestCompleted)
	require.True(t, ok)
	assert.Equal(t, "Persian Gulf", done.Route)
	assert.Equal(t, []string{"Asbatankvoy 2025", "Shellvoy 6", "ExxonMobil Voy2000", "INTERTANKVOY 76"}, done.Templates)

	view.Update(done)

	assert.Equal(t, done.Templates, view.Suggestions())
	assert.False(t, view.InputFocused())
	assert.Contains(t, view.View(), "For Persian Gulf:")
}

func TestView_UnmatchedRouteListsWholeCatalog(t *testing.T) {
	advisor := newAdvisor()
	view := NewView(nil, advisor)

	view.Update(view.Suggest("nowhere in particular")())

	assert.Len(t, view.Suggestions(), 6)
}

func TestView_SelectSuggestion(t *testing.T) {
	view := NewView(nil, newAdvisor())
	view.Update(messages.SuggestCompleted{Route: "x", Templates: []string{"Shellvoy 6", "BPVOY4"}})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.TemplateSelected{Name: "BPVOY4"}, cmd())
}

func TestView_EscFromListRefocusesInput(t *testing.T) {
	view := NewView(nil, newAdvisor())
	view.Update(messages.SuggestCompleted{Route: "x", Templates: []string{"BPVOY4"}})
	require.False(t, view.InputFocused())

	view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, view.InputFocused())
}

func TestView_EscFromInputGoesToMenu(t *testing.T) {
	view := NewView(nil, newAdvisor())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_NilAdvisor(t *testing.T) {
	view := NewView(nil, nil)

	msg := view.Suggest("gulf")()

	assert.Equal(t, messages.SuggestCompleted{Route: "gulf"}, msg)
	view.Update(msg)
	assert.Empty(t, view.Suggestions())
	assert.True(t, view.InputFocused())
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, newAdvisor())
	typeRoute(view, "gulf")
	view.Update(messages.SuggestCompleted{Route: "gulf", Templates: []string{"BPVOY4"}})

	view.Reset()

	assert.Empty(t, view.Suggestions())
	assert.True(t, view.InputFocused())
	assert.NotContains(t, view.View(), "For gulf")
}
