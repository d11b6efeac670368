package driving

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// CatalogService exposes the template catalog.
// Reads never fail; an unknown name yields an empty template.
type CatalogService interface {
	// ListTemplateNames returns template names in registration order.
	ListTemplateNames() []string

	// GetTemplate returns a copy of the named template, or a template
	// with no fields if the name is unknown.
	GetTemplate(name string) domain.Template

	// Reload rebuilds the catalog from its store.
	Reload(ctx context.Context) error
}

// RouteAdvisor suggests templates for a free-text route.
type RouteAdvisor interface {
	// Suggest returns template names conventionally used on the route.
	// It never returns an empty list.
	Suggest(route string) []string
}
