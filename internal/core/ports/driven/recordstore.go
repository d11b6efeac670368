package driven

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// CharterRecordStore is the append-only log of saved charters.
// Implementations serialise concurrent appends.
type CharterRecordStore interface {
	// Append adds one record to the end of the log.
	Append(ctx context.Context, rec domain.CharterRecord) error

	// List returns all records in append order.
	List(ctx context.Context) ([]domain.CharterRecord, error)
}
