package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

// BuildReport aggregates per-document reviews, the checklist result,
// and batch-level issues into the final report. Pure aggregation: no
// I/O, inputs are not mutated.
//
// Verdict policy: any missing required document makes the run
// incomplete regardless of issue severities; otherwise any
// high-severity issue flags it; otherwise it is clean.
func BuildReport(
	process domain.Process,
	reviews []domain.DocumentReview,
	checklist domain.ChecklistResult,
	aiUsed bool,
) domain.Report {
	var issues []domain.Issue
	for i := range reviews {
		issues = append(issues, reviews[i].Issues...)
	}
	issues = append(issues, MissingIssues(checklist)...)

	report := domain.Report{
		ID:        uuid.New().String(),
		Process:   process,
		Documents: reviews,
		Checklist: checklist,
		Issues:    issues,
		AIUsed:    aiUsed,
		CreatedAt: time.Now(),
	}

	switch {
	case !checklist.Complete():
		report.Verdict = domain.VerdictIncomplete
	case report.HighCount() > 0:
		report.Verdict = domain.VerdictFlagged
	default:
		report.Verdict = domain.VerdictClean
	}
	return report
}
