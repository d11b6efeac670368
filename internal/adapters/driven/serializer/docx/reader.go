package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// Extract is the readable content of a DOCX file.
type Extract struct {
	Title      string
	Paragraphs []string
}

// Text joins the paragraphs with newlines.
func (e Extract) Text() string {
	return strings.Join(e.Paragraphs, "\n")
}

// Read extracts the title and paragraph text from a DOCX file.
func Read(content []byte) (Extract, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return Extract{}, fmt.Errorf("%w: not a docx archive", domain.ErrInvalidInput)
	}

	var out Extract
	if data, ok, err := readPart(reader, partDocument); err != nil {
		return Extract{}, err
	} else if ok {
		out.Paragraphs, err = parseDocumentXML(data)
		if err != nil {
			return Extract{}, err
		}
	}
	if data, ok, err := readPart(reader, partCore); err == nil && ok {
		out.Title = parseTitle(data)
	}
	return out, nil
}

func readPart(reader *zip.Reader, name string) ([]byte, bool, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, false, fmt.Errorf("%w: open %s", domain.ErrInvalidInput, name)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, false, fmt.Errorf("%w: read %s", domain.ErrInvalidInput, name)
		}
		return data, true, nil
	}
	return nil, false, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML returns the text of every non-empty paragraph.
func parseDocumentXML(content []byte) ([]string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse document.xml: %v", domain.ErrInvalidInput, err)
	}

	paras := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, r := range para.Runs {
			for _, t := range r.Text {
				b.WriteString(t.Content)
			}
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			paras = append(paras, text)
		}
	}
	return paras, nil
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

func parseTitle(content []byte) string {
	var core coreXML
	if err := xml.Unmarshal(content, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
