package file

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure RuleStore implements the interface.
var _ driven.RuleStore = (*RuleStore)(nil)

// defaultRules is the embedded review configuration, used when no user
// rules file exists.
//
//go:embed rules.toml
var defaultRules []byte

// rulesFile is the TOML shape of a rules configuration.
type rulesFile struct {
	Processes []processSection  `toml:"process"`
	Filename  []classifierEntry `toml:"filename_rule"`
	Content   []classifierEntry `toml:"content_rule"`
	RedFlags  []redFlagEntry    `toml:"red_flag"`
	Clauses   []clauseSection   `toml:"required_clause"`
	Templates map[string]string `toml:"templates"`
}

type processSection struct {
	Name     string   `toml:"name"`
	Required []string `toml:"required"`
}

type classifierEntry struct {
	Keywords []string `toml:"keywords"`
	Type     string   `toml:"type"`
}

type redFlagEntry struct {
	Category   string   `toml:"category"`
	Severity   string   `toml:"severity"`
	Scope      string   `toml:"scope"`
	Keywords   []string `toml:"keywords"`
	Qualifiers []string `toml:"qualifiers"`
	Title      string   `toml:"title"`
}

type clauseSection struct {
	Type    string   `toml:"type"`
	Clauses []string `toml:"clauses"`
}

// RuleStore is a TOML-backed implementation of driven.RuleStore.
// Rules are parsed once at construction and immutable afterwards, so
// reads need no locking.
type RuleStore struct {
	order      []domain.Process
	checklists map[domain.Process][]domain.DocumentType
	filename   []driven.ClassifierRule
	content    []driven.ClassifierRule
	redFlags   []driven.RedFlagRule
	clauses    map[domain.DocumentType][]string
	templates  map[domain.Category]string
}

// NewRuleStore loads review rules from the given TOML file. If path is
// empty or the file does not exist, the embedded defaults are used.
func NewRuleStore(path string) (*RuleStore, error) {
	data := defaultRules
	if path != "" {
		loaded, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = loaded
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrRulesUnavailable, path, err)
		}
	}

	var parsed rulesFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse rules: %v", domain.ErrRulesUnavailable, err)
	}
	return buildRuleStore(parsed)
}

// buildRuleStore converts the parsed TOML into typed rule tables.
func buildRuleStore(parsed rulesFile) (*RuleStore, error) {
	if len(parsed.Processes) == 0 {
		return nil, fmt.Errorf("%w: no processes configured", domain.ErrRulesUnavailable)
	}

	s := &RuleStore{
		checklists: make(map[domain.Process][]domain.DocumentType),
		clauses:    make(map[domain.DocumentType][]string),
		templates:  make(map[domain.Category]string),
	}

	for _, p := range parsed.Processes {
		name := domain.Process(strings.TrimSpace(p.Name))
		if name == "" || name == domain.ProcessUnknown {
			return nil, fmt.Errorf("%w: invalid process name %q", domain.ErrRulesUnavailable, p.Name)
		}
		required := make([]domain.DocumentType, 0, len(p.Required))
		for _, t := range p.Required {
			required = append(required, domain.DocumentType(t))
		}
		if _, dup := s.checklists[name]; dup {
			return nil, fmt.Errorf("%w: duplicate process %q", domain.ErrRulesUnavailable, name)
		}
		s.order = append(s.order, name)
		s.checklists[name] = required
	}

	for _, r := range parsed.Filename {
		s.filename = append(s.filename, classifierRule(r))
	}
	for _, r := range parsed.Content {
		s.content = append(s.content, classifierRule(r))
	}

	for _, r := range parsed.RedFlags {
		scope := driven.RuleScope(r.Scope)
		if scope != driven.ScopeParagraph && scope != driven.ScopeDocument {
			return nil, fmt.Errorf("%w: red flag %q has unknown scope %q", domain.ErrRulesUnavailable, r.Title, r.Scope)
		}
		s.redFlags = append(s.redFlags, driven.RedFlagRule{
			Category:   domain.Category(r.Category),
			Severity:   domain.Severity(r.Severity),
			Scope:      scope,
			Keywords:   lowerAll(r.Keywords),
			Qualifiers: lowerAll(r.Qualifiers),
			Title:      r.Title,
		})
	}

	for _, c := range parsed.Clauses {
		s.clauses[domain.DocumentType(c.Type)] = c.Clauses
	}
	for category, text := range parsed.Templates {
		s.templates[domain.Category(category)] = text
	}

	return s, nil
}

// Checklist returns the ordered required types for a process.
func (s *RuleStore) Checklist(process domain.Process) ([]domain.DocumentType, error) {
	required, ok := s.checklists[process]
	if !ok {
		return nil, domain.ErrUnknownProcess
	}
	return required, nil
}

// Processes lists the configured processes in declaration order.
func (s *RuleStore) Processes() []domain.Process {
	return s.order
}

// FilenameRules returns the filename classification table.
func (s *RuleStore) FilenameRules() []driven.ClassifierRule {
	return s.filename
}

// ContentRules returns the content-fallback classification table.
func (s *RuleStore) ContentRules() []driven.ClassifierRule {
	return s.content
}

// RedFlagRules returns the detection rule table in declaration order.
func (s *RuleStore) RedFlagRules() []driven.RedFlagRule {
	return s.redFlags
}

// RequiredClauses returns clause keywords for a document type.
func (s *RuleStore) RequiredClauses(t domain.DocumentType) []string {
	return s.clauses[t]
}

// Template returns the fallback suggestion for a category, falling
// back to the configured default entry.
func (s *RuleStore) Template(c domain.Category) string {
	if tmpl, ok := s.templates[c]; ok {
		return tmpl
	}
	return s.templates[domain.Category("default")]
}

func classifierRule(entry classifierEntry) driven.ClassifierRule {
	return driven.ClassifierRule{
		Keywords: lowerAll(entry.Keywords),
		Type:     domain.DocumentType(entry.Type),
	}
}

// lowerAll lowercases keywords so matching against lowered text works
// regardless of how the rules file capitalises them.
func lowerAll(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		result = append(result, strings.ToLower(kw))
	}
	return result
}
