// Package docx adapts DOCX files to the document model: reading a file
// into an ordered paragraph sequence and writing annotated copies with
// highlighted inline comments.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// documentEntry is the archive member holding the document body.
const documentEntry = "word/document.xml"

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader parses DOCX files into domain documents.
type Reader struct{}

// NewReader creates a new DOCX reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the file at path. Every w:p element becomes one
// paragraph, empty ones included, so paragraph indexes line up with
// the XML structure the writer edits later. A file that is not a valid
// ZIP archive or has no document body is reported as malformed.
func (r *Reader) Read(_ context.Context, path string) (*domain.Document, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, domain.ErrMalformedDocument)
	}
	defer archive.Close()

	content, err := readEntry(&archive.Reader, documentEntry)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	texts, err := parseParagraphs(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, domain.ErrMalformedDocument)
	}

	doc := &domain.Document{
		ID:       uuid.New().String(),
		Filename: filepath.Base(path),
		Path:     path,
		Type:     domain.TypeUnknown,
	}
	for i, text := range texts {
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{Index: i, Text: text})
	}
	return doc, nil
}

// readEntry returns the named archive member's bytes.
func readEntry(archive *zip.Reader, name string) ([]byte, error) {
	for _, file := range archive.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, domain.ErrMalformedDocument
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, domain.ErrMalformedDocument
		}
		return content, nil
	}
	return nil, domain.ErrMalformedDocument
}

// wmlNamespace is the WordprocessingML main namespace. Paragraph
// counting is restricted to it so DrawingML a:p elements never shift
// indexes.
const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// parseParagraphs walks the document XML and collects the text of
// every w:p element in opening order, including paragraphs nested in
// tables and textboxes. The writer enumerates w:p opening tags the
// same way, so indexes agree between the two passes.
func parseParagraphs(content []byte) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(content)))

	type openPara struct {
		index int
		text  strings.Builder
	}

	var (
		texts  []string
		stack  []*openPara
		inText bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == wmlNamespace && t.Name.Local == "p":
				texts = append(texts, "")
				stack = append(stack, &openPara{index: len(texts) - 1})
			case t.Name.Local == "t":
				inText = len(stack) > 0
			}
		case xml.EndElement:
			switch {
			case t.Name.Space == wmlNamespace && t.Name.Local == "p":
				if n := len(stack); n > 0 {
					p := stack[n-1]
					stack = stack[:n-1]
					texts[p.index] = strings.TrimSpace(p.text.String())
				}
			case t.Name.Local == "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	return texts, nil
}
