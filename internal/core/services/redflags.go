package services

import (
	"fmt"
	"strings"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// Detector scans a document's paragraphs against the declarative
// red-flag rule table. Detection is substring based, case-insensitive,
// with no semantic disambiguation.
type Detector struct {
	rules driven.RuleStore
}

// NewDetector creates a new red-flag detector.
func NewDetector(rules driven.RuleStore) *Detector {
	return &Detector{rules: rules}
}

// Scan returns the document's issues in deterministic order:
// paragraph-scope issues by paragraph index then rule order, followed
// by document-scope issues anchored at the last paragraph, followed by
// missing required clauses anchored at the first paragraph. The first
// keyword hit per rule per paragraph wins; a paragraph may still
// trigger several distinct rules. A clean document yields an empty
// slice.
func (d *Detector) Scan(doc *domain.Document) []domain.Issue {
	table := d.rules.RedFlagRules()
	var issues []domain.Issue

	for i := range doc.Paragraphs {
		lowered := strings.ToLower(doc.Paragraphs[i].Text)
		for _, rule := range table {
			if rule.Scope != driven.ScopeParagraph {
				continue
			}
			match, ok := firstHit(lowered, rule.Keywords)
			if !ok || anyHit(lowered, rule.Qualifiers) {
				continue
			}
			issues = append(issues, domain.Issue{
				Document:       doc.Filename,
				DocumentType:   doc.Type,
				ParagraphIndex: i,
				Category:       rule.Category,
				Severity:       rule.Severity,
				Match:          match,
				Title:          rule.Title,
			})
		}
	}

	for _, rule := range table {
		if rule.Scope != driven.ScopeDocument {
			continue
		}
		if d.documentContains(doc, rule.Keywords) {
			continue
		}
		issues = append(issues, domain.Issue{
			Document:       doc.Filename,
			DocumentType:   doc.Type,
			ParagraphIndex: doc.LastIndex(),
			Category:       rule.Category,
			Severity:       rule.Severity,
			Match:          strings.Join(rule.Keywords, "; "),
			Title:          rule.Title,
		})
	}

	issues = append(issues, d.missingClauses(doc)...)

	logger.Debug("Scanned %s: %d issues", doc.Filename, len(issues))
	return issues
}

// missingClauses checks the per-type required clause keywords against
// the full document text.
func (d *Detector) missingClauses(doc *domain.Document) []domain.Issue {
	clauses := d.rules.RequiredClauses(doc.Type)
	if len(clauses) == 0 {
		return nil
	}

	lowered := strings.ToLower(doc.FullText())
	var issues []domain.Issue
	for _, clause := range clauses {
		if strings.Contains(lowered, strings.ToLower(clause)) {
			continue
		}
		issues = append(issues, domain.Issue{
			Document:       doc.Filename,
			DocumentType:   doc.Type,
			ParagraphIndex: 0,
			Category:       domain.CategoryMissingClause,
			Severity:       domain.SeverityHigh,
			Match:          clause,
			Title:          fmt.Sprintf("Missing required clause: %s", clause),
		})
	}
	return issues
}

// documentContains reports whether any paragraph contains any keyword.
func (d *Detector) documentContains(doc *domain.Document, keywords []string) bool {
	for i := range doc.Paragraphs {
		if anyHit(strings.ToLower(doc.Paragraphs[i].Text), keywords) {
			return true
		}
	}
	return false
}

// firstHit returns the first keyword contained in the lowered text.
func firstHit(lowered string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return kw, true
		}
	}
	return "", false
}

func anyHit(lowered string, keywords []string) bool {
	_, ok := firstHit(lowered, keywords)
	return ok
}
