package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charta/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/views/records"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/views/route"
	"github.com/custodia-labs/charta/internal/adapters/driving/tui/views/templates"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	templatesView *templates.View
	detailView    *templates.DetailView
	routeView     *route.View
	recordsView   *records.View
	statusBar     *status.Bar

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s),
		templatesView: templates.NewView(s, ports.Catalog),
		detailView:    templates.NewDetailView(s, ports.Charter),
		routeView:     route.NewView(s, ports.Advisor),
		recordsView:   records.NewView(context.Background(), s, ports.Charter),
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.recordsView = records.NewView(ctx, a.styles, a.ports.Charter)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("charta - Charter Parties"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.TemplateSelected:
		back := a.currentView
		if back != messages.ViewRoute {
			back = messages.ViewTemplates
		}
		a.detailView.SetTemplate(msg.Name, back)
		a.currentView = messages.ViewTemplateDetail
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage(msg.Name)
		return a, nil

	case messages.SuggestCompleted:
		a.routeView, cmd = a.routeView.Update(msg)
		a.statusBar.SetState(status.StateList)
		a.statusBar.SetCount(len(msg.Templates))
		a.statusBar.SetMessage(fmt.Sprintf("%d suggestions", len(msg.Templates)))
		return a, cmd

	case messages.RecordsLoaded:
		a.recordsView, cmd = a.recordsView.Update(msg)
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
		} else {
			a.statusBar.SetState(status.StateList)
			a.statusBar.SetMessage("")
			a.statusBar.SetCount(len(msg.Records))
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward sends a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewTemplates:
		a.templatesView, cmd = a.templatesView.Update(msg)
	case messages.ViewTemplateDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewRoute:
		a.routeView, cmd = a.routeView.Update(msg)
	case messages.ViewRecords:
		a.recordsView, cmd = a.recordsView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	previous := a.currentView
	a.currentView = view
	a.statusBar.Clear()

	switch view {
	case messages.ViewTemplates:
		a.templatesView.Init()
		a.statusBar.SetState(status.StateList)
		a.statusBar.SetCount(a.templatesView.Len())
	case messages.ViewRoute:
		// Coming back from a suggested template keeps the suggestions.
		if previous == messages.ViewTemplateDetail {
			return nil
		}
		a.routeView.Reset()
		return a.routeView.Init()
	case messages.ViewRecords:
		a.statusBar.SetState(status.StateLoading)
		return a.recordsView.Init()
	case messages.ViewMenu, messages.ViewTemplateDetail, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewTemplates:
		body = a.templatesView.View()
	case messages.ViewTemplateDetail:
		body = a.detailView.View()
	case messages.ViewRoute:
		body = a.routeView.View()
	case messages.ViewRecords:
		body = a.recordsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		return a.menuView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.templatesView.SetDimensions(width, height-2)
	a.detailView.SetDimensions(width, height-2)
	a.routeView.SetDimensions(width, height-2)
	a.recordsView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
