package services

import (
	"fmt"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// ChecklistEvaluator determines which required document types are
// present across a classified document set.
type ChecklistEvaluator struct {
	rules driven.RuleStore
}

// NewChecklistEvaluator creates a new checklist evaluator.
func NewChecklistEvaluator(rules driven.RuleStore) *ChecklistEvaluator {
	return &ChecklistEvaluator{rules: rules}
}

// Evaluate computes present and missing required types for the process.
// Duplicate uploads of the same type count once; unknown types are
// ignored. Both result slices preserve the checklist's declared order.
// An unconfigured process returns domain.ErrUnknownProcess.
func (e *ChecklistEvaluator) Evaluate(process domain.Process, types []domain.DocumentType) (domain.ChecklistResult, error) {
	required, err := e.rules.Checklist(process)
	if err != nil {
		return domain.ChecklistResult{}, fmt.Errorf("checklist for %q: %w", process, err)
	}

	have := make(map[domain.DocumentType]struct{}, len(types))
	for _, t := range types {
		if t.Known() {
			have[t] = struct{}{}
		}
	}

	result := domain.ChecklistResult{Process: process}
	for _, t := range required {
		if _, ok := have[t]; ok {
			result.Present = append(result.Present, t)
		} else {
			result.Missing = append(result.Missing, t)
		}
	}
	return result, nil
}

// MissingIssues turns a checklist result into batch-level issues, one
// per missing required type.
func MissingIssues(result domain.ChecklistResult) []domain.Issue {
	issues := make([]domain.Issue, 0, len(result.Missing))
	for _, t := range result.Missing {
		issues = append(issues, domain.Issue{
			Category: domain.CategoryMissingDocument,
			Severity: domain.SeverityHigh,
			Match:    t.String(),
			Title:    fmt.Sprintf("Missing required document: %s", t.DisplayName()),
		})
	}
	return issues
}
