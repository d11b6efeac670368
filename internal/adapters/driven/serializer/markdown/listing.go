package markdown

import (
	"context"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// listingIndent prefixes continuation lines of multi-line values.
const listingIndent = "  "

// ListingSerializer writes the flat term listing, one "Field: value"
// line per term in term order.
type ListingSerializer struct{}

// NewListing creates a listing serializer.
func NewListing() *ListingSerializer {
	return &ListingSerializer{}
}

// Format returns the output format this serializer produces.
func (s *ListingSerializer) Format() domain.OutputFormat {
	return domain.FormatListing
}

// Extension returns the file extension without the dot.
func (s *ListingSerializer) Extension() string {
	return "txt"
}

// MIMEType returns the content type of the artifact.
func (s *ListingSerializer) MIMEType() string {
	return "text/plain; charset=utf-8"
}

// Serialize writes the document's term listing followed by its
// advisories.
func (s *ListingSerializer) Serialize(ctx context.Context, doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, kv := range doc.Terms {
		lines := strings.Split(strings.TrimSpace(kv.Value), "\n")
		b.WriteString(kv.Key + ": " + lines[0] + "\n")
		for _, l := range lines[1:] {
			if strings.TrimSpace(l) == "" {
				continue
			}
			b.WriteString(listingIndent + l + "\n")
		}
	}
	for _, a := range doc.Advisories {
		b.WriteString("Advisory: " + a + "\n")
	}
	return []byte(b.String()), nil
}
