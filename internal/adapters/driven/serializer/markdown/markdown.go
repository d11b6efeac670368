package markdown

import (
	"context"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// Ensure serializers implement the interface.
var (
	_ driven.DocumentSerializer = (*Serializer)(nil)
	_ driven.DocumentSerializer = (*ListingSerializer)(nil)
)

// Serializer writes documents as Markdown.
type Serializer struct{}

// New creates a Markdown serializer.
func New() *Serializer {
	return &Serializer{}
}

// Format returns the output format this serializer produces.
func (s *Serializer) Format() domain.OutputFormat {
	return domain.FormatMarkdown
}

// Extension returns the file extension without the dot.
func (s *Serializer) Extension() string {
	return "md"
}

// MIMEType returns the content type of the artifact.
func (s *Serializer) MIMEType() string {
	return "text/markdown; charset=utf-8"
}

// Serialize renders the title as a level-one heading, parts as level
// two and sections as level three.
func (s *Serializer) Serialize(ctx context.Context, doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("# " + oneLine(doc.Title) + "\n\n")
	if doc.Subtitle != "" {
		b.WriteString("_" + oneLine(doc.Subtitle) + "_\n\n")
	}
	if doc.Preamble != "" {
		b.WriteString(body(doc.Preamble) + "\n\n")
	}

	part := ""
	for _, sec := range doc.Sections {
		if sec.Part != "" && sec.Part != part {
			part = sec.Part
			b.WriteString("## " + oneLine(part) + "\n\n")
		}
		b.WriteString("### " + oneLine(sec.Heading) + "\n\n")
		b.WriteString(body(sec.Body) + "\n\n")
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

// blockMarkers are characters that start a Markdown block construct when
// they lead a line.
const blockMarkers = "#>-+*=_`~|"

// body keeps paragraph breaks and forces single line breaks to render
// as hard breaks. Lines are unindented and a leading block marker is
// escaped, so clause text cannot turn into headings, rules or code.
func body(text string) string {
	paras := strings.Split(strings.TrimSpace(text), "\n\n")
	for i, p := range paras {
		lines := strings.Split(p, "\n")
		for j := range lines {
			lines[j] = escapeLine(strings.TrimSpace(lines[j]))
		}
		paras[i] = strings.Join(lines, "  \n")
	}
	return strings.Join(paras, "\n\n")
}

func escapeLine(line string) string {
	if line != "" && strings.ContainsRune(blockMarkers, rune(line[0])) {
		return "\\" + line
	}
	return line
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
