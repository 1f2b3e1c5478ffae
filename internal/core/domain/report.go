package domain

import "time"

// Verdict is the overall outcome of a review run.
type Verdict string

// Verdict policy: any missing required document wins over issue
// severity; high-severity issues flag an otherwise complete set.
const (
	VerdictClean      Verdict = "complete — no blocking issues"
	VerdictFlagged    Verdict = "complete — flagged issues present"
	VerdictIncomplete Verdict = "incomplete — missing required documents"
)

// DocumentReview is the per-document entry in a Report. Every accepted
// input file yields exactly one entry, including files that failed to
// parse.
type DocumentReview struct {
	// Filename is the source file's base name.
	Filename string `json:"filename"`

	// Type is the classified document type, "unknown" if unresolved.
	Type DocumentType `json:"type"`

	// Issues are the issues detected in this document, in paragraph
	// order.
	Issues []Issue `json:"issues"`

	// ReviewedPath is where the annotated copy was written, empty when
	// annotation was skipped or failed.
	ReviewedPath string `json:"reviewed_path,omitempty"`

	// Failed marks a document that could not be parsed. Failed
	// documents are excluded from checklist evaluation.
	Failed bool `json:"failed,omitempty"`

	// FailureReason carries the parse error for failed documents.
	FailureReason string `json:"failure_reason,omitempty"`
}

// Report aggregates the outcome of one review run. It is purely
// derived data with no identity of its own.
type Report struct {
	// ID identifies the run, used by the history store.
	ID string `json:"id"`

	// Process is the evaluated target process.
	Process Process `json:"process"`

	// Documents holds one entry per accepted input file.
	Documents []DocumentReview `json:"documents"`

	// Checklist is the cross-document completeness result.
	Checklist ChecklistResult `json:"checklist"`

	// Issues is the ordered union of all issues, document issues first
	// (in input order), then batch-level missing-document issues.
	Issues []Issue `json:"issues"`

	// Verdict is the overall outcome.
	Verdict Verdict `json:"verdict"`

	// AIUsed reports whether AI grounding was active for the run.
	AIUsed bool `json:"ai_used"`

	// CreatedAt is when the report was built.
	CreatedAt time.Time `json:"created_at"`
}

// HighCount returns the number of high-severity issues.
func (r Report) HighCount() int {
	n := 0
	for i := range r.Issues {
		if r.Issues[i].Severity == SeverityHigh {
			n++
		}
	}
	return n
}
