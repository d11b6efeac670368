package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
	"github.com/custodia-labs/charta/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// catalogSnapshot is an immutable view of the templates.
type catalogSnapshot struct {
	names     []string
	templates map[string]domain.Template
}

// Catalog is the read-only template catalog.
// Reads go through an atomically swapped snapshot and need no locking.
type Catalog struct {
	store driven.TemplateStore
	snap  atomic.Pointer[catalogSnapshot]
}

// NewCatalog creates a catalog over a store without loading it.
// Until Reload succeeds, the catalog serves the built-in templates.
func NewCatalog(store driven.TemplateStore) *Catalog {
	c := &Catalog{store: store}
	c.snap.Store(snapshotOf(domain.BuiltinTemplates()))
	return c
}

// LoadCatalog creates a catalog and loads it from the store.
// A nil store yields the built-in catalog.
func LoadCatalog(ctx context.Context, store driven.TemplateStore) (*Catalog, error) {
	c := NewCatalog(store)
	if store == nil {
		return c, nil
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rebuilds the snapshot from the store. On error the previous
// snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	names, err := c.store.Names(ctx)
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	templates := make([]domain.Template, 0, len(names))
	for _, name := range names {
		tpl, err := c.store.Get(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("loading template %q: %w", name, err)
		}
		templates = append(templates, tpl.Normalise())
	}

	c.snap.Store(snapshotOf(templates))
	logger.For("catalog").Debug("loaded %d templates", len(templates))
	return nil
}

// ListTemplateNames returns template names in registration order.
func (c *Catalog) ListTemplateNames() []string {
	snap := c.snap.Load()
	out := make([]string, len(snap.names))
	copy(out, snap.names)
	return out
}

// GetTemplate returns a copy of the named template. An unknown name
// yields a template with the requested name and no fields.
func (c *Catalog) GetTemplate(name string) domain.Template {
	tpl, ok := c.snap.Load().templates[name]
	if !ok {
		logger.For("catalog").Debug("unknown template %q", name)
		return domain.Template{Name: name, Kind: domain.ContractVoyage}
	}
	return tpl.Clone()
}

// Contains reports whether a template name is known.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.snap.Load().templates[name]
	return ok
}

// snapshotOf indexes templates; a later duplicate name replaces the
// earlier one but keeps its registration position.
func snapshotOf(templates []domain.Template) *catalogSnapshot {
	snap := &catalogSnapshot{templates: make(map[string]domain.Template, len(templates))}
	for _, tpl := range templates {
		if _, ok := snap.templates[tpl.Name]; !ok {
			snap.names = append(snap.names, tpl.Name)
		}
		snap.templates[tpl.Name] = tpl
	}
	return snap
}
