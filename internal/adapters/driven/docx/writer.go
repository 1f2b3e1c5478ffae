package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// ReviewedSuffix is appended to the base name of annotated copies.
const ReviewedSuffix = "_reviewed"

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders annotated DOCX copies. Comments are appended to their
// paragraph as bold, highlighted runs; every other byte of the archive
// is carried over untouched.
type Writer struct{}

// NewWriter creates a new DOCX writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteAnnotated writes "<name>_reviewed.docx" into outDir and returns
// its path. The document's source file is re-read so the annotated
// copy preserves formatting the reader does not model.
func (w *Writer) WriteAnnotated(_ context.Context, doc *domain.Document, outDir string) (string, error) {
	archive, err := zip.OpenReader(doc.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", doc.Path, domain.ErrMalformedDocument)
	}
	defer archive.Close()

	content, err := readEntry(&archive.Reader, documentEntry)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", doc.Path, err)
	}

	annotated, err := injectComments(string(content), collectComments(doc))
	if err != nil {
		return "", fmt.Errorf("annotate %s: %w", doc.Filename, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(outDir, reviewedName(doc.Filename))

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range archive.File {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: file.Name, Method: file.Method})
		if err != nil {
			zw.Close()
			return "", fmt.Errorf("write entry %s: %w", file.Name, err)
		}
		if file.Name == documentEntry {
			if _, err := io.WriteString(fw, annotated); err != nil {
				zw.Close()
				return "", fmt.Errorf("write document body: %w", err)
			}
			continue
		}
		rc, err := file.Open()
		if err != nil {
			zw.Close()
			return "", fmt.Errorf("copy entry %s: %w", file.Name, err)
		}
		_, err = io.Copy(fw, rc)
		rc.Close()
		if err != nil {
			zw.Close()
			return "", fmt.Errorf("copy entry %s: %w", file.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalise %s: %w", outPath, err)
	}
	return outPath, nil
}

// reviewedName turns "articles.docx" into "articles_reviewed.docx".
func reviewedName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ReviewedSuffix + ext
}

// collectComments groups the document's comments by paragraph index.
func collectComments(doc *domain.Document) map[int][]domain.Comment {
	grouped := make(map[int][]domain.Comment)
	for i := range doc.Paragraphs {
		for _, c := range doc.Paragraphs[i].Comments {
			grouped[i] = append(grouped[i], c)
		}
	}
	return grouped
}

// injectComments appends comment runs to the matching paragraphs of
// the document XML. Paragraphs are numbered by w:p opening tags in
// document order, nested ones included, the same enumeration the
// reader uses, so indexes agree between the two passes. Edits are
// collected first and spliced afterwards so a paragraph nested inside
// an annotated one still receives its own comments.
func injectComments(content string, comments map[int][]domain.Comment) (string, error) {
	if len(comments) == 0 {
		return content, nil
	}

	type edit struct {
		start, end int
		text       string
	}
	var edits []edit

	index := 0
	for from := 0; ; {
		open := findParagraphOpen(content, from)
		if open < 0 {
			break
		}
		tagEnd := strings.IndexByte(content[open:], '>')
		if tagEnd < 0 {
			return "", fmt.Errorf("unterminated paragraph tag at offset %d", open)
		}
		tagEnd += open

		runs := comments[index]
		index++
		from = tagEnd + 1

		if len(runs) == 0 {
			continue
		}

		var b strings.Builder
		if content[tagEnd-1] == '/' {
			// Self-closing empty paragraph: expand it to hold the runs.
			b.WriteString(content[open : open+4])
			b.WriteString(strings.TrimSuffix(content[open+4:tagEnd], "/"))
			b.WriteString(">")
			writeRuns(&b, runs)
			b.WriteString("</w:p>")
			edits = append(edits, edit{start: open, end: tagEnd + 1, text: b.String()})
			continue
		}

		closeAt := findParagraphClose(content, tagEnd+1)
		if closeAt < 0 {
			return "", fmt.Errorf("unclosed paragraph at offset %d", open)
		}
		writeRuns(&b, runs)
		edits = append(edits, edit{start: closeAt, end: closeAt, text: b.String()})
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var out strings.Builder
	pos := 0
	for _, e := range edits {
		out.WriteString(content[pos:e.start])
		out.WriteString(e.text)
		pos = e.end
	}
	out.WriteString(content[pos:])
	return out.String(), nil
}

// findParagraphOpen returns the offset of the next w:p opening tag at
// or after from, skipping w:pPr and other prefixed names.
func findParagraphOpen(content string, from int) int {
	for {
		i := strings.Index(content[from:], "<w:p")
		if i < 0 {
			return -1
		}
		i += from
		next := i + len("<w:p")
		if next < len(content) {
			switch content[next] {
			case '>', ' ', '/':
				return i
			}
		}
		from = i + 1
	}
}

// findParagraphClose returns the offset of the close tag matching the
// paragraph whose open tag ends just before from. Nested w:p pairs,
// as in textbox content, are skipped over.
func findParagraphClose(content string, from int) int {
	depth := 0
	for {
		closeAt := strings.Index(content[from:], "</w:p>")
		if closeAt < 0 {
			return -1
		}
		closeAt += from

		open := findParagraphOpen(content, from)
		if open >= 0 && open < closeAt {
			tagEnd := strings.IndexByte(content[open:], '>')
			if tagEnd < 0 {
				return -1
			}
			tagEnd += open
			if content[tagEnd-1] != '/' {
				depth++
			}
			from = tagEnd + 1
			continue
		}

		if depth == 0 {
			return closeAt
		}
		depth--
		from = closeAt + len("</w:p>")
	}
}

// writeRuns appends one bold, highlighted run per comment.
func writeRuns(b *strings.Builder, comments []domain.Comment) {
	for _, c := range comments {
		fmt.Fprintf(b,
			`<w:r><w:rPr><w:b/><w:highlight w:val="%s"/></w:rPr><w:t xml:space="preserve"> [COMMENT: %s]</w:t></w:r>`,
			highlightValue(c.Highlight), escapeXML(c.Text))
	}
}

// highlightValue maps a domain highlight to the OOXML highlight value.
func highlightValue(h domain.Highlight) string {
	if h == domain.HighlightRed {
		return "red"
	}
	return "yellow"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
