package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// CatalogFile is the default catalog file name inside the data directory.
const CatalogFile = "templates.yaml"

// Ensure CatalogStore implements the interface.
var _ driven.TemplateStore = (*CatalogStore)(nil)

// catalogFile is the on-disk shape of a YAML template catalog:
//
//	templates:
//	  - name: Shellvoy 6
//	    kind: voyage
//	    fields:
//	      - name: Owners
//	        default: "[Owner Name]"
type catalogFile struct {
	Templates []domain.Template `yaml:"templates"`
}

// CatalogStore reads templates from a YAML file. The file is re-read on
// every Names call so edits show up on the next catalog reload.
type CatalogStore struct {
	mu   sync.RWMutex
	path string
}

// NewCatalogStore creates a store over a YAML catalog file.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// NewCatalogStoreInDir creates a catalog store in dataDir. If dataDir is
// empty, defaults to ~/.charta/data.
func NewCatalogStoreInDir(dataDir string) (*CatalogStore, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return NewCatalogStore(filepath.Join(dir, CatalogFile)), nil
}

// Path returns the catalog file path.
func (s *CatalogStore) Path() string {
	return s.path
}

// Names returns template names in file order. A later duplicate name
// replaces the earlier template but keeps its position.
func (s *CatalogStore) Names(ctx context.Context) ([]string, error) {
	templates, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(templates))
	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		if seen[tpl.Name] {
			continue
		}
		seen[tpl.Name] = true
		names = append(names, tpl.Name)
	}
	return names, nil
}

// Get returns the last definition of the named template.
func (s *CatalogStore) Get(ctx context.Context, name string) (*domain.Template, error) {
	templates, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(templates) - 1; i >= 0; i-- {
		if templates[i].Name == name {
			tpl := templates[i]
			return &tpl, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save adds or replaces a template and rewrites the file.
func (s *CatalogStore) Save(ctx context.Context, tpl domain.Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return fmt.Errorf("%w: template name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	replaced := false
	for i := range templates {
		if templates[i].Name == tpl.Name {
			templates[i] = tpl
			replaced = true
		}
	}
	if !replaced {
		templates = append(templates, tpl)
	}

	data, err := yaml.Marshal(catalogFile{Templates: templates})
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return writeFileAtomic(s.path, data, 0600)
}

// Seed writes the given templates when the catalog file does not exist yet.
// It returns the number of templates written.
func (s *CatalogStore) Seed(ctx context.Context, templates []domain.Template) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return 0, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("checking catalog %s: %w", s.path, err)
	}

	data, err := yaml.Marshal(catalogFile{Templates: templates})
	if err != nil {
		return 0, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0600); err != nil {
		return 0, err
	}
	return len(templates), nil
}

func (s *CatalogStore) load(ctx context.Context) ([]domain.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", s.path, err)
	}
	return templates, nil
}

// read parses the catalog file. Callers hold the lock.
func (s *CatalogStore) read() ([]domain.Template, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", domain.ErrInvalidInput, err)
	}
	for i, tpl := range f.Templates {
		if strings.TrimSpace(tpl.Name) == "" {
			return nil, fmt.Errorf("%w: template %d has no name", domain.ErrInvalidInput, i+1)
		}
	}
	return f.Templates, nil
}
