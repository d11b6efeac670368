// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/charta/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTemplates lists the catalog templates.
	ViewTemplates
	// ViewTemplateDetail shows the fields of one template.
	ViewTemplateDetail
	// ViewRoute is the route advisor input and suggestions.
	ViewRoute
	// ViewRecords lists saved charter records.
	ViewRecords
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTemplates:
		return "templates"
	case ViewTemplateDetail:
		return "template_detail"
	case ViewRoute:
		return "route"
	case ViewRecords:
		return "records"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// TemplateSelected signals a template was picked for the detail view.
type TemplateSelected struct {
	Name string
}

// SuggestRequested asks the route advisor for templates.
type SuggestRequested struct {
	Route string
}

// SuggestCompleted carries the advisor's suggestions for a route.
type SuggestCompleted struct {
	Route     string
	Templates []string
}

// RecordsLoaded carries saved charter records.
type RecordsLoaded struct {
	Records []domain.CharterRecord
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
