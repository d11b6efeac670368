package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// Ensure Serializer implements the interface.
var _ driven.DocumentSerializer = (*Serializer)(nil)

// MIMEType is the content type of a Word document.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partCore         = "docProps/core.xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const relsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

// Font sizes in half-points.
const (
	sizeTitle    = 32
	sizeSubtitle = 24
	sizePart     = 26
	sizeHeading  = 22
)

// paragraphStyle is the direct formatting applied to one paragraph.
type paragraphStyle struct {
	bold   bool
	italic bool
	center bool
	size   int
}

// Serializer writes documents as DOCX.
type Serializer struct{}

// New creates a DOCX serializer.
func New() *Serializer {
	return &Serializer{}
}

// Format returns the output format this serializer produces.
func (s *Serializer) Format() domain.OutputFormat {
	return domain.FormatDocx
}

// Extension returns the file extension without the dot.
func (s *Serializer) Extension() string {
	return "docx"
}

// MIMEType returns the content type of the artifact.
func (s *Serializer) MIMEType() string {
	return MIMEType
}

// Serialize renders the document as a DOCX package.
func (s *Serializer) Serialize(ctx context.Context, doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts := []struct {
		name string
		body string
	}{
		{partContentTypes, contentTypesXML},
		{partRels, relsXML},
		{partDocument, documentBody(doc)},
		{partCore, coreProperties(doc)},
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, p := range parts {
		// No Modified time: every entry gets the same zero DOS date.
		f, err := w.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close docx: %w", err)
	}
	return buf.Bytes(), nil
}

// documentBody builds word/document.xml.
func documentBody(doc *domain.Document) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeParagraph(&b, doc.Title, paragraphStyle{bold: true, center: true, size: sizeTitle})
	if doc.Subtitle != "" {
		writeParagraph(&b, doc.Subtitle, paragraphStyle{italic: true, center: true, size: sizeSubtitle})
	}
	writeBody(&b, doc.Preamble)

	part := ""
	for _, sec := range doc.Sections {
		if sec.Part != "" && sec.Part != part {
			part = sec.Part
			writeParagraph(&b, part, paragraphStyle{bold: true, center: true, size: sizePart})
		}
		writeParagraph(&b, sec.Heading, paragraphStyle{bold: true, size: sizeHeading})
		writeBody(&b, sec.Body)
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`)
	return b.String()
}

// writeBody writes one paragraph per non-blank line.
func writeBody(b *strings.Builder, body string) {
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		writeParagraph(b, line, paragraphStyle{})
	}
}

func writeParagraph(b *strings.Builder, text string, st paragraphStyle) {
	b.WriteString("<w:p>")
	if st.center {
		b.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	b.WriteString("<w:r>")
	if st.bold || st.italic || st.size > 0 {
		b.WriteString("<w:rPr>")
		if st.bold {
			b.WriteString("<w:b/>")
		}
		if st.italic {
			b.WriteString("<w:i/>")
		}
		if st.size > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/>`, st.size)
		}
		b.WriteString("</w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escape(text))
	b.WriteString("</w:t></w:r></w:p>")
}

// coreProperties builds docProps/core.xml. No timestamps are written.
func coreProperties(doc *domain.Document) string {
	return xmlHeader +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/">` +
		`<dc:title>` + escape(doc.Title) + `</dc:title>` +
		`<dc:subject>` + escape(doc.Subtitle) + `</dc:subject>` +
		`<dc:description>` + escape(doc.Template) + `</dc:description>` +
		`<dc:creator>charta</dc:creator>` +
		`</cp:coreProperties>`
}

func escape(s string) string {
	var b strings.Builder
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
