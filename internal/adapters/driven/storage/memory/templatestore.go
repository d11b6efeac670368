package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is an in-memory implementation of driven.TemplateStore.
// Names are returned in the order templates were first saved.
type TemplateStore struct {
	mu        sync.RWMutex
	order     []string
	templates map[string]domain.Template
}

// NewTemplateStore creates a store seeded with the given templates.
func NewTemplateStore(seed ...domain.Template) *TemplateStore {
	s := &TemplateStore{templates: make(map[string]domain.Template)}
	for _, tpl := range seed {
		s.put(tpl)
	}
	return s
}

// NewBuiltinTemplateStore creates a store holding the built-in templates.
func NewBuiltinTemplateStore() *TemplateStore {
	return NewTemplateStore(domain.BuiltinTemplates()...)
}

// Names returns template names in registration order.
func (s *TemplateStore) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Get retrieves a template by name.
func (s *TemplateStore) Get(_ context.Context, name string) (*domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := tpl.Clone()
	return &c, nil
}

// Save stores or replaces a template. A replaced template keeps its position.
func (s *TemplateStore) Save(_ context.Context, tpl domain.Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return fmt.Errorf("%w: template name is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(tpl)
	return nil
}

func (s *TemplateStore) put(tpl domain.Template) {
	if _, ok := s.templates[tpl.Name]; !ok {
		s.order = append(s.order, tpl.Name)
	}
	s.templates[tpl.Name] = tpl.Clone()
}
