// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
)

// Item is one row: a title and an optional muted detail line.
type Item struct {
	Title  string
	Detail string
}

// ItemList displays items in a navigable, scrolling list.
type ItemList struct {
	heading  string
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a list component with a heading.
func NewItemList(heading string, s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		heading: heading,
		styles:  s,
		width:   80,
		height:  10,
	}
}

// Init initialises the list.
func (l *ItemList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation keys.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("Nothing to show")
	}

	lines := make([]string, 0, len(l.items)*2+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.heading, len(l.items))), "")

	// Two lines per item.
	visible := (l.height - 4) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (l *ItemList) renderItem(index int) string {
	item := l.items[index]
	title := truncate(item.Title, l.width-4)

	var line string
	if index == l.selected {
		line = l.styles.Selected.Render("> " + title)
	} else {
		line = l.styles.Normal.Render("  " + title)
	}
	if item.Detail == "" {
		return line
	}
	return line + "\n" + l.styles.Muted.Render("    "+truncate(item.Detail, l.width-6))
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// SetItems replaces the items and resets the selection.
func (l *ItemList) SetItems(items []Item) {
	l.items = items
	l.selected = 0
}

// Items returns the current items.
func (l *ItemList) Items() []Item {
	return l.items
}

// Len returns the number of items.
func (l *ItemList) Len() int {
	return len(l.items)
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index if it is in range.
func (l *ItemList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItem returns the selected item, or false if the list is empty.
func (l *ItemList) SelectedItem() (Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return Item{}, false
	}
	return l.items[l.selected], true
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetSize sets the list dimensions.
func (l *ItemList) SetSize(width, height int) {
	l.width = width
	l.height = height
}
