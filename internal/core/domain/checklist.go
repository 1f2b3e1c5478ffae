package domain

import "strings"

// Process identifies a target legal process whose checklist is evaluated.
type Process string

// ProcessIncorporation is the only built-in process; additional processes
// can be declared in the rule configuration.
const (
	ProcessIncorporation Process = "company-incorporation"
	ProcessUnknown       Process = "unknown"
)

// DisplayName returns the human-readable process title. Processes
// declared only in the rule configuration derive a title from their
// identifier.
func (p Process) DisplayName() string {
	switch p {
	case ProcessIncorporation:
		return "Company Incorporation"
	case ProcessUnknown:
		return "Unknown"
	}

	words := strings.Split(string(p), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ChecklistResult is the outcome of evaluating a document set against
// a process checklist. Both slices preserve the checklist's declared
// order, so results are deterministic.
type ChecklistResult struct {
	// Process is the evaluated process.
	Process Process `json:"process"`

	// Present lists the required types found in the document set.
	Present []DocumentType `json:"present"`

	// Missing lists the required types absent from the document set.
	Missing []DocumentType `json:"missing"`
}

// Complete reports whether no required document is missing.
func (r ChecklistResult) Complete() bool {
	return len(r.Missing) == 0
}
