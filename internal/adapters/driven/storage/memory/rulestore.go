package memory

import (
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure RuleStore implements the interface.
var _ driven.RuleStore = (*RuleStore)(nil)

// RuleStore is an in-memory implementation of driven.RuleStore.
// Fields are set at construction and read-only afterwards; it exists
// mainly as a service-test fixture.
type RuleStore struct {
	Checklists map[domain.Process][]domain.DocumentType
	Filename   []driven.ClassifierRule
	Content    []driven.ClassifierRule
	RedFlags   []driven.RedFlagRule
	Clauses    map[domain.DocumentType][]string
	Templates  map[domain.Category]string
}

// NewRuleStore creates an empty in-memory rule store.
func NewRuleStore() *RuleStore {
	return &RuleStore{
		Checklists: make(map[domain.Process][]domain.DocumentType),
		Clauses:    make(map[domain.DocumentType][]string),
		Templates:  make(map[domain.Category]string),
	}
}

// Checklist returns the required types for a process.
func (s *RuleStore) Checklist(process domain.Process) ([]domain.DocumentType, error) {
	required, ok := s.Checklists[process]
	if !ok {
		return nil, domain.ErrUnknownProcess
	}
	return required, nil
}

// Processes lists the configured processes.
func (s *RuleStore) Processes() []domain.Process {
	result := make([]domain.Process, 0, len(s.Checklists))
	for p := range s.Checklists {
		result = append(result, p)
	}
	return result
}

// FilenameRules returns the filename classification table.
func (s *RuleStore) FilenameRules() []driven.ClassifierRule {
	return s.Filename
}

// ContentRules returns the content-fallback classification table.
func (s *RuleStore) ContentRules() []driven.ClassifierRule {
	return s.Content
}

// RedFlagRules returns the detection rule table.
func (s *RuleStore) RedFlagRules() []driven.RedFlagRule {
	return s.RedFlags
}

// RequiredClauses returns clause keywords for a document type.
func (s *RuleStore) RequiredClauses(t domain.DocumentType) []string {
	return s.Clauses[t]
}

// Template returns the fallback suggestion for a category.
func (s *RuleStore) Template(c domain.Category) string {
	if tmpl, ok := s.Templates[c]; ok {
		return tmpl
	}
	return "Align with ADGM wording where applicable."
}
