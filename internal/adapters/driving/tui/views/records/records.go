// Package records provides the saved charter records view.
package records

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// View lists saved charter records and shows one record's terms.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	charter driving.CharterService
	list    *list.ItemList
	records []domain.CharterRecord
	loading bool
	detail  bool
	err     error
	width   int
	height  int
}

// NewView creates a records view.
func NewView(ctx context.Context, s *styles.Styles, charter driving.CharterService) *View {
	if ctx == nil {
		ctx = context.Background()
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:     ctx,
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		charter: charter,
		list:    list.NewItemList("Saved charters", s),
		width:   80,
		height:  24,
	}
}

// Init starts loading the records.
func (v *View) Init() tea.Cmd {
	v.detail = false
	return v.load()
}

func (v *View) load() tea.Cmd {
	if v.charter == nil {
		return nil
	}
	v.loading = true
	ctx, charter := v.ctx, v.charter
	return func() tea.Msg {
		recs, err := charter.Records(ctx)
		return messages.RecordsLoaded{Records: recs, Err: err}
	}
}

// Update handles messages for the records view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.RecordsLoaded:
		v.loading = false
		v.err = msg.Err
		v.records = msg.Records
		items := make([]list.Item, 0, len(msg.Records))
		for i, rec := range msg.Records {
			items = append(items, recordItem(i, rec))
		}
		v.list.SetItems(items)

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Back):
			if v.detail {
				v.detail = false
				return v, nil
			}
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case keymap.Matches(key, v.keymap.Select):
			if _, ok := v.list.SelectedItem(); ok {
				v.detail = true
			}
			return v, nil
		case keymap.Matches(key, v.keymap.Refresh):
			return v, v.load()
		}
		if !v.detail {
			v.list, _ = v.list.Update(msg)
		}
	}
	return v, nil
}

func recordItem(i int, rec domain.CharterRecord) list.Item {
	title := fmt.Sprintf("[%d] %s", i+1, rec.Template)
	if rec.VesselClass != "" {
		title += " / " + rec.VesselClass
	}
	var detail []string
	if name := rec.Terms[domain.FieldVesselName]; name != "" {
		detail = append(detail, name)
	}
	if route := rec.Terms[domain.FieldRoute]; route != "" {
		detail = append(detail, route)
	}
	if !rec.SavedAt.IsZero() {
		detail = append(detail, rec.SavedAt.Format("2006-01-02 15:04"))
	}
	return list.Item{Title: title, Detail: strings.Join(detail, ", ")}
}

// View renders the records list or the selected record.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Charter Records"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No charter records saved."))
	case v.detail:
		b.WriteString(v.renderDetail())
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	if v.detail {
		b.WriteString(v.styles.Help.Render("[Esc] Back to records"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Terms  [r] Refresh  [Esc] Menu"))
	}
	return b.String()
}

func (v *View) renderDetail() string {
	rec, ok := v.Selected()
	if !ok {
		return ""
	}
	var tpl domain.Template
	if v.charter != nil {
		tpl = v.charter.Preview(rec.Template, rec.VesselClass)
	}
	terms := rec.TermSet(tpl)

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(rec.Template))
	if rec.VesselClass != "" {
		b.WriteString("  " + v.styles.Muted.Render(rec.VesselClass))
	}
	b.WriteString("\n\n")
	for _, name := range terms.Names() {
		value := strings.ReplaceAll(strings.TrimSpace(terms.Text(name)), "\n", "\n    ")
		b.WriteString(v.styles.FieldName.Render(name + ":"))
		b.WriteString(" " + v.styles.Normal.Render(value))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Selected returns the highlighted record.
func (v *View) Selected() (domain.CharterRecord, bool) {
	i := v.list.Selected()
	if i < 0 || i >= len(v.records) {
		return domain.CharterRecord{}, false
	}
	return v.records[i], true
}

// ShowingDetail reports whether a record's terms are displayed.
func (v *View) ShowingDetail() bool {
	return v.detail
}

// Len returns the number of loaded records.
func (v *View) Len() int {
	return len(v.records)
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, height-6)
}
