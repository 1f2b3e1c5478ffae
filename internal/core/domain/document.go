package domain

// Document represents a parsed word-processing document under review.
// It is the canonical representation produced by the DOCX reader.
type Document struct {
	// ID is the unique identifier for this review session's document.
	ID string

	// Filename is the base name of the source file. It doubles as the
	// document's identity within a batch.
	Filename string

	// Path is the original location on disk.
	Path string

	// Paragraphs is the ordered paragraph sequence. Indexes are stable
	// across classification, detection, and annotation passes.
	Paragraphs []Paragraph

	// Type is the inferred document type. TypeUnknown until classified;
	// the classifier assigns it exactly once.
	Type DocumentType
}

// Paragraph is a position-addressable unit of document text.
// It owns the dedup state for comments attached to it.
type Paragraph struct {
	// Index is the position within the document, stable across passes.
	Index int

	// Text is the raw paragraph text.
	Text string

	// Comments holds the inline comments inserted by the annotator,
	// in insertion order.
	Comments []Comment

	// seen tracks exact comment display texts already attached,
	// enforcing the one-comment-per-(paragraph, text) invariant.
	seen map[string]struct{}
}

// Highlight is the colour applied to an inline comment.
type Highlight string

// Highlight colours, keyed by issue severity.
const (
	HighlightYellow Highlight = "yellow"
	HighlightRed    Highlight = "red"
)

// Comment is a highlighted inline annotation attached to a paragraph.
type Comment struct {
	// ParagraphIndex is the paragraph the comment is anchored to.
	ParagraphIndex int

	// Text is the display text, e.g. "AI Suggestion: ... | Source: ...".
	Text string

	// Highlight is the colour of the inserted run.
	Highlight Highlight
}

// FullText joins all paragraph texts with newlines.
// Used by content-based classification and clause checks.
func (d *Document) FullText() string {
	n := 0
	for i := range d.Paragraphs {
		n += len(d.Paragraphs[i].Text) + 1
	}
	buf := make([]byte, 0, n)
	for i := range d.Paragraphs {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, d.Paragraphs[i].Text...)
	}
	return string(buf)
}

// LastIndex returns the index of the last paragraph, or 0 for an
// empty document. Document-scoped issues anchor here.
func (d *Document) LastIndex() int {
	if len(d.Paragraphs) == 0 {
		return 0
	}
	return len(d.Paragraphs) - 1
}

// ClampIndex maps an arbitrary paragraph index onto a valid one,
// falling back to the last paragraph when out of range.
func (d *Document) ClampIndex(i int) int {
	if i < 0 || i >= len(d.Paragraphs) {
		return d.LastIndex()
	}
	return i
}

// HasComment reports whether the paragraph already carries a comment
// with the exact display text.
func (p *Paragraph) HasComment(text string) bool {
	_, ok := p.seen[text]
	return ok
}

// AddComment attaches a comment to the paragraph. It returns false
// without mutating anything if an identical display text is already
// present, making repeated annotation runs idempotent.
func (p *Paragraph) AddComment(c Comment) bool {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, ok := p.seen[c.Text]; ok {
		return false
	}
	p.seen[c.Text] = struct{}{}
	p.Comments = append(p.Comments, c)
	return true
}
