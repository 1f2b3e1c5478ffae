package domain

// Category identifies the kind of compliance problem an Issue describes.
type Category string

// Issue categories produced by the detector and checklist evaluator.
const (
	CategoryJurisdiction     Category = "jurisdiction"
	CategoryMissingSignatory Category = "missing-signatory"
	CategoryAmbiguous        Category = "ambiguous-language"
	CategoryMissingClause    Category = "missing-clause"
	CategoryMissingDocument  Category = "missing-document"
)

// Severity grades how blocking an Issue is.
type Severity string

// Severity levels, ordered high > medium > low.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue is a single detected compliance problem. Issues are immutable
// once created; grounding results are attached by constructing the
// final record, not by mutation downstream.
type Issue struct {
	// Document is the filename of the document the issue belongs to.
	// Empty for batch-level issues (missing documents).
	Document string `json:"document,omitempty"`

	// DocumentType is the classified type of that document.
	DocumentType DocumentType `json:"document_type,omitempty"`

	// ParagraphIndex anchors the issue within the document.
	ParagraphIndex int `json:"paragraph_index"`

	// Category is the issue kind.
	Category Category `json:"category"`

	// Severity grades the issue.
	Severity Severity `json:"severity"`

	// Match is the text span or keyword that triggered the issue.
	Match string `json:"match,omitempty"`

	// Title is a short human-readable description.
	Title string `json:"title"`

	// Suggestion is the recommended fix, templated or AI-derived.
	Suggestion string `json:"suggestion,omitempty"`

	// Rationale is the AI explanation. Empty on the templated path.
	Rationale string `json:"rationale,omitempty"`

	// Citation is the label of the grounding snippet, nil when the
	// suggestion was not AI-grounded.
	Citation *string `json:"citation,omitempty"`
}

// HighlightFor maps a severity to the annotation colour.
// High-severity issues are highlighted red, everything else yellow.
func HighlightFor(s Severity) Highlight {
	if s == SeverityHigh {
		return HighlightRed
	}
	return HighlightYellow
}
