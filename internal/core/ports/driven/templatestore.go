package driven

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// TemplateStore persists charter-party templates.
// The template name is the identity key; Save replaces by name.
type TemplateStore interface {
	// Names returns template names in registration order.
	Names(ctx context.Context) ([]string, error)

	// Get retrieves a template by name.
	// Returns domain.ErrNotFound if no template has that name.
	Get(ctx context.Context, name string) (*domain.Template, error)

	// Save stores a template, replacing any template with the same name.
	// This is an administrative operation; the core never calls it.
	Save(ctx context.Context, tpl domain.Template) error
}
