package driving

import (
	"context"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

// ReviewOptions configures a review run.
type ReviewOptions struct {
	// Process is the target process whose checklist is evaluated.
	// Empty means detect from the classified document types.
	Process domain.Process

	// AI enables AI-grounded suggestions. When false, or when the
	// generator is unavailable, suggestions come from templates.
	AI bool

	// OutDir is where annotated copies are written. Empty disables
	// writing annotated files (the report is still produced).
	OutDir string
}

// ReviewService runs the document review pipeline: parse, classify,
// evaluate the checklist, detect red flags, ground suggestions,
// annotate, and build the report.
type ReviewService interface {
	// Review processes a batch of document files and returns the
	// aggregate report. Per-document parse failures are recorded in
	// the report, not returned as errors; only configuration problems
	// (unknown process, unreadable rules or snippet corpus) fail the
	// run.
	Review(ctx context.Context, paths []string, opts ReviewOptions) (domain.Report, error)
}
