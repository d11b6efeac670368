package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.CharterRecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory append-only charter record log.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.CharterRecord
}

// NewRecordStore creates an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Append adds a record to the end of the log.
func (s *RecordStore) Append(_ context.Context, rec domain.CharterRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, copyRecord(rec))
	return nil
}

// List returns all records in append order.
func (s *RecordStore) List(_ context.Context) ([]domain.CharterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CharterRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = copyRecord(rec)
	}
	return out, nil
}

func copyRecord(rec domain.CharterRecord) domain.CharterRecord {
	terms := make(map[string]string, len(rec.Terms))
	for k, v := range rec.Terms {
		terms[k] = v
	}
	rec.Terms = terms
	return rec
}
