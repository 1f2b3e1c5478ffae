package driven

import "github.com/docketry-labs/docketry-cli/internal/core/domain"

// RuleScope controls how a red-flag rule is applied.
type RuleScope string

// Rule scopes.
const (
	// ScopeParagraph rules match individual paragraphs; each matching
	// paragraph yields one issue for the rule's category.
	ScopeParagraph RuleScope = "paragraph"

	// ScopeDocument rules apply once per document: the issue is emitted
	// when no paragraph contains any of the rule's keywords, anchored
	// at the last paragraph.
	ScopeDocument RuleScope = "document"
)

// ClassifierRule maps keyword substrings to a document type. Rules are
// evaluated in declaration order against the lowercased input.
type ClassifierRule struct {
	// Keywords are case-insensitive substrings to look for.
	Keywords []string

	// Type is assigned on the first keyword hit.
	Type domain.DocumentType
}

// RedFlagRule is a data-described detection pattern. The detector
// iterates rules generically; adding a category means adding a rule,
// not touching detector logic.
type RedFlagRule struct {
	// Category is the issue category this rule produces.
	Category domain.Category

	// Severity grades issues produced by this rule.
	Severity domain.Severity

	// Scope selects per-paragraph or per-document evaluation.
	Scope RuleScope

	// Keywords are case-insensitive substrings. For paragraph scope a
	// hit triggers the rule; for document scope absence everywhere does.
	Keywords []string

	// Qualifiers suppress a paragraph-scope match when any of them
	// occurs in the same paragraph. Used for the ADGM jurisdiction
	// exception.
	Qualifiers []string

	// Title is the human-readable issue description.
	Title string
}

// RuleStore provides the static review configuration: process
// checklists, classification keyword tables, red-flag rules, per-type
// required clauses, and templated fallback suggestions. Loaded once at
// startup, read-only thereafter.
type RuleStore interface {
	// Checklist returns the ordered required document types for a
	// process, or domain.ErrUnknownProcess for an unconfigured one.
	Checklist(process domain.Process) ([]domain.DocumentType, error)

	// Processes lists the configured processes.
	Processes() []domain.Process

	// FilenameRules returns the filename classification table.
	FilenameRules() []ClassifierRule

	// ContentRules returns the content-fallback classification table.
	ContentRules() []ClassifierRule

	// RedFlagRules returns the detection rule table in priority order.
	RedFlagRules() []RedFlagRule

	// RequiredClauses returns clause keywords that must appear in a
	// document of the given type. Empty for types without clause rules.
	RequiredClauses(t domain.DocumentType) []string

	// Template returns the fallback suggestion for an issue category.
	Template(c domain.Category) string
}
