package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Count())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		count   int
		want    string
	}{
		{"ready", StateReady, "", 0, "Ready"},
		{"ready with message", StateReady, "Saved", 0, "Saved"},
		{"loading", StateLoading, "", 0, "Loading..."},
		{"error", StateError, "log unreadable", 0, "Error: log unreadable"},
		{"bare error", StateError, "", 0, "Error"},
		{"list count", StateList, "", 7, "7 items"},
		{"list message", StateList, "3 suggestions", 3, "3 suggestions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetCount(tt.count)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_View_Hints(t *testing.T) {
	bar := NewBar(nil, nil)
	assert.Contains(t, bar.View(), "q: quit")

	bar.SetState(StateList)
	view := bar.View()
	assert.Contains(t, view, "enter: select")
	assert.Contains(t, view, "esc: back")
}

func TestBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(5)

	assert.NotEmpty(t, bar.View())
	assert.Equal(t, 5, bar.Width())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCount(4)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Count())
}
