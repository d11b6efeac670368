package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/charta/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "charta.db"

// Store is a SQLite-backed storage that provides the template and
// record stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.charta/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".charta", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// WAL mode lets readers proceed while a record is appended.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// TemplateStore returns a TemplateStore interface backed by this store.
func (s *Store) TemplateStore() driven.TemplateStore {
	return &templateStore{store: s}
}

// RecordStore returns a CharterRecordStore interface backed by this store.
func (s *Store) RecordStore() driven.CharterRecordStore {
	return &recordStore{store: s}
}

// SeedTemplates saves the given templates when the catalog is empty.
// It returns the number of templates written.
func (s *Store) SeedTemplates(ctx context.Context, templates []domain.Template) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM templates").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	ts := s.TemplateStore()
	for _, tpl := range templates {
		if err := ts.Save(ctx, tpl); err != nil {
			return 0, err
		}
	}
	return len(templates), nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Template Store ====================

// templateStore implements driven.TemplateStore.
type templateStore struct {
	store *Store
}

var _ driven.TemplateStore = (*templateStore)(nil)

// Names returns template names in registration order.
func (s *templateStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT name FROM templates ORDER BY position, name")
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var names []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning template name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return names, nil
}

// Get retrieves a template by name.
func (s *templateStore) Get(ctx context.Context, name string) (*domain.Template, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT name, kind, fields FROM templates WHERE name = ?", name)

	var tpl domain.Template
	var kind, fieldsJSON string
	if err := row.Scan(&tpl.Name, &kind, &fieldsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}
	tpl.Kind = domain.ContractKind(kind)

	if err := json.Unmarshal([]byte(fieldsJSON), &tpl.Fields); err != nil {
		return nil, fmt.Errorf("unmarshaling fields: %w", err)
	}
	return &tpl, nil
}

// Save stores or replaces a template. A replaced template keeps its position.
func (s *templateStore) Save(ctx context.Context, tpl domain.Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return fmt.Errorf("%w: template name is required", domain.ErrInvalidInput)
	}
	fields := tpl.Fields
	if fields == nil {
		fields = []domain.Field{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}

	kind := tpl.Kind
	if !kind.IsValid() {
		kind = domain.ContractVoyage
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO templates (name, position, kind, fields, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM templates), ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			fields = excluded.fields,
			updated_at = excluded.updated_at
	`, tpl.Name, string(kind), string(fieldsJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	return nil
}

// ==================== Record Store ====================

// recordStore implements driven.CharterRecordStore.
type recordStore struct {
	store *Store
}

var _ driven.CharterRecordStore = (*recordStore)(nil)

// Append adds a record to the end of the log.
func (s *recordStore) Append(ctx context.Context, rec domain.CharterRecord) error {
	terms := rec.Terms
	if terms == nil {
		terms = map[string]string{}
	}
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("marshalling terms: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO charter_records (template, vessel_class, terms, saved_at)
		VALUES (?, ?, ?, ?)
	`, rec.Template, rec.VesselClass, string(termsJSON), nullTime(rec.SavedAt))
	if err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}

// List returns all records in append order.
func (s *recordStore) List(ctx context.Context) ([]domain.CharterRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT template, vessel_class, terms, saved_at
		FROM charter_records ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.CharterRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.CharterRecord
		var termsJSON string
		var savedAt sql.NullTime
		if err := rows.Scan(&rec.Template, &rec.VesselClass, &termsJSON, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(termsJSON), &rec.Terms); err != nil {
			return nil, fmt.Errorf("unmarshaling terms: %w", err)
		}
		if savedAt.Valid {
			rec.SavedAt = savedAt.Time.UTC()
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// nullTime stores the zero time as NULL.
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
