// Package templates provides the template list and template detail views.
package templates

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// View lists the catalog templates.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	list    *list.ItemList
	width   int
	height  int
}

// NewView creates a template list backed by the catalog.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		catalog: catalog,
		list:    list.NewItemList("Templates", s),
		width:   80,
		height:  24,
	}
}

// Init loads the template names.
func (v *View) Init() tea.Cmd {
	v.Load()
	return nil
}

// Load refreshes the list from the catalog.
func (v *View) Load() {
	if v.catalog == nil {
		v.list.SetItems(nil)
		return
	}
	names := v.catalog.ListTemplateNames()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		tpl := v.catalog.GetTemplate(name)
		items = append(items, list.Item{
			Title:  name,
			Detail: fmt.Sprintf("%s charter, %d fields", tpl.Kind, len(tpl.Fields)),
		})
	}
	v.list.SetItems(items)
}

// Update handles messages for the template list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case keymap.Matches(key, v.keymap.Select):
			item, ok := v.list.SelectedItem()
			if !ok {
				return v, nil
			}
			return v, func() tea.Msg { return messages.TemplateSelected{Name: item.Title} }
		case keymap.Matches(key, v.keymap.Refresh):
			v.Load()
			return v, nil
		}
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

// View renders the template list.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Charter-Party Templates"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Fields  [r] Refresh  [Esc] Menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, height-6)
}

// Len returns the number of listed templates.
func (v *View) Len() int {
	return v.list.Len()
}

// Selected returns the selected template name, or "" when empty.
func (v *View) Selected() string {
	item, _ := v.list.SelectedItem()
	return item.Title
}
