package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// RecordLogFile is the record log file name inside the data directory.
const RecordLogFile = "charter_records.json"

// Ensure RecordLog implements the interface.
var _ driven.CharterRecordStore = (*RecordLog)(nil)

// RecordLog keeps charter records as a JSON array in a single file:
//
//	[{"template": "...", "vesselClass": "...", "terms": {"Owners": "..."}}]
//
// Appends rewrite the whole file atomically under a mutex, so the log is
// safe for concurrent use within one process.
type RecordLog struct {
	mu   sync.Mutex
	path string
}

// NewRecordLog creates a record log at path.
func NewRecordLog(path string) *RecordLog {
	return &RecordLog{path: path}
}

// NewRecordLogInDir creates a record log in dataDir. If dataDir is empty,
// defaults to ~/.charta/data.
func NewRecordLogInDir(dataDir string) (*RecordLog, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return NewRecordLog(filepath.Join(dir, RecordLogFile)), nil
}

func resolveDataDir(dataDir string) (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".charta", "data"), nil
}

// Path returns the log file path.
func (l *RecordLog) Path() string {
	return l.path
}

// Append adds a record to the end of the log.
func (l *RecordLog) Append(ctx context.Context, rec domain.CharterRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return err
	}
	if rec.Terms == nil {
		rec.Terms = map[string]string{}
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return writeFileAtomic(l.path, data, 0600)
}

// List returns all records in append order. A missing file is an empty log.
func (l *RecordLog) List(ctx context.Context) ([]domain.CharterRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// read loads the log. Callers hold the lock.
func (l *RecordLog) read() ([]domain.CharterRecord, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.CharterRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading record log: %w", err)
	}
	if len(data) == 0 {
		return []domain.CharterRecord{}, nil
	}

	var records []domain.CharterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing record log %s: %w", l.path, err)
	}
	return records, nil
}
