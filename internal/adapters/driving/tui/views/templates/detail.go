package templates

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// DetailView shows a template's fields, optionally adjusted for a vessel class.
type DetailView struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	charter  driving.CharterService
	classes  []domain.ClassProfile
	name     string
	classIdx int // -1 means unadjusted
	template domain.Template
	back     messages.ViewType
	offset   int
	width    int
	height   int
}

// NewDetailView creates a detail view that previews through the charter service.
func NewDetailView(s *styles.Styles, charter driving.CharterService) *DetailView {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &DetailView{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		charter:  charter,
		classes:  domain.VesselClasses(),
		classIdx: -1,
		back:     messages.ViewTemplates,
		width:    80,
		height:   24,
	}
}

// SetTemplate selects the template to show and the view to return to.
func (d *DetailView) SetTemplate(name string, back messages.ViewType) {
	d.name = name
	d.back = back
	d.classIdx = -1
	d.offset = 0
	d.refresh()
}

func (d *DetailView) refresh() {
	if d.charter == nil {
		d.template = domain.Template{Name: d.name}
		return
	}
	d.template = d.charter.Preview(d.name, d.VesselClass())
}

// VesselClass returns the class applied to the preview, or "".
func (d *DetailView) VesselClass() string {
	if d.classIdx < 0 || d.classIdx >= len(d.classes) {
		return ""
	}
	return string(d.classes[d.classIdx].Class)
}

// Template returns the template as currently previewed.
func (d *DetailView) Template() domain.Template {
	return d.template
}

// Update handles messages for the detail view.
func (d *DetailView) Update(msg tea.Msg) (*DetailView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, d.keymap.Back):
			back := d.back
			return d, func() tea.Msg { return messages.ViewChanged{View: back} }
		case keymap.Matches(key, d.keymap.NextClass):
			d.classIdx++
			if d.classIdx >= len(d.classes) {
				d.classIdx = -1
			}
			d.refresh()
		case keymap.Matches(key, d.keymap.Up):
			if d.offset > 0 {
				d.offset--
			}
		case keymap.Matches(key, d.keymap.Down):
			if d.offset < len(d.template.Fields)-1 {
				d.offset++
			}
		}
	}
	return d, nil
}

// View renders the template fields.
func (d *DetailView) View() string {
	var b strings.Builder
	b.WriteString(d.styles.Title.Render(d.name))
	if d.template.Kind != "" {
		b.WriteString("  " + d.styles.Muted.Render(string(d.template.Kind)+" charter"))
	}
	b.WriteString("\n")
	class := d.VesselClass()
	if class == "" {
		class = "none"
	}
	b.WriteString(d.styles.Subtitle.Render("Vessel class: " + class))
	b.WriteString("\n\n")

	if d.template.IsEmpty() {
		b.WriteString(d.styles.Error.Render(fmt.Sprintf("No template named %q", d.name)))
		b.WriteString("\n")
	}

	visible := d.height - 8
	if visible < 1 {
		visible = 1
	}
	fields := d.template.Fields
	if d.offset < len(fields) {
		fields = fields[d.offset:]
	}
	if len(fields) > visible {
		fields = fields[:visible]
	}
	for _, f := range fields {
		b.WriteString(d.styles.FieldName.Render(f.Name))
		b.WriteString(" " + d.styles.FieldKind.Render("["+string(f.Kind)+"]"))
		if def := firstLine(f.Default); def != "" {
			b.WriteString("  " + d.styles.Normal.Render(def))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Help.Render("[j/k] Scroll  [c] Vessel class  [Esc] Back"))
	return b.String()
}

func firstLine(s string) string {
	line, rest, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if strings.TrimSpace(rest) != "" {
		return line + " ..."
	}
	return line
}

// SetDimensions sets the view dimensions.
func (d *DetailView) SetDimensions(width, height int) {
	d.width = width
	d.height = height
}
