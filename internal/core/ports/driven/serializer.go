package driven

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// DocumentSerializer turns a rendered document into a downloadable artifact.
// The core treats the returned bytes as opaque.
type DocumentSerializer interface {
	// Format returns the output format this serializer produces.
	Format() domain.OutputFormat

	// Extension returns the file extension without the dot.
	Extension() string

	// MIMEType returns the content type of the artifact.
	MIMEType() string

	// Serialize renders the document.
	Serialize(ctx context.Context, doc *domain.Document) ([]byte, error)
}
