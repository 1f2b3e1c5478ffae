package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// Configuration errors abort a run before any document is processed.

	// ErrUnknownProcess indicates the target process has no checklist
	// configured.
	ErrUnknownProcess = errors.New("unknown target process")

	// ErrRulesUnavailable indicates the rule configuration is missing
	// or corrupt.
	ErrRulesUnavailable = errors.New("rule configuration unavailable")

	// ErrSnippetsUnavailable indicates the snippet corpus could not be
	// read. Fatal only when AI grounding is enabled.
	ErrSnippetsUnavailable = errors.New("snippet corpus unavailable")

	// Per-document errors never abort the batch.

	// ErrMalformedDocument indicates a document's structure could not
	// be parsed. The document is reported as failed and excluded from
	// checklist evaluation.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrGeneratorUnavailable indicates the suggestion generator is not
	// configured. Grounding degrades to the templated path.
	ErrGeneratorUnavailable = errors.New("suggestion generator unavailable")
)
