package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driving"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService orchestrates the review pipeline: parse each file,
// classify, detect red flags, ground suggestions, annotate a copy, and
// build the aggregate report. The review store is optional.
type ReviewService struct {
	reader     driven.DocumentReader
	writer     driven.DocumentWriter
	classifier *Classifier
	checklist  *ChecklistEvaluator
	detector   *Detector
	grounder   *Grounder
	annotator  *Annotator
	history    driven.ReviewStore
	snippetErr error
}

// NewReviewService creates a new review service. The history store is
// optional (can be nil).
func NewReviewService(
	reader driven.DocumentReader,
	writer driven.DocumentWriter,
	rules driven.RuleStore,
	snippets driven.SnippetStore,
	generator driven.SuggestionGenerator,
) *ReviewService {
	return &ReviewService{
		reader:     reader,
		writer:     writer,
		classifier: NewClassifier(rules),
		checklist:  NewChecklistEvaluator(rules),
		detector:   NewDetector(rules),
		grounder:   NewGrounder(snippets, rules, generator),
		annotator:  NewAnnotator(),
	}
}

// SetHistoryStore enables report persistence.
func (s *ReviewService) SetHistoryStore(store driven.ReviewStore) {
	s.history = store
}

// SetSnippetLoadError records a reference-corpus load failure.
// Template-only runs are unaffected; AI-enabled runs abort on it
// before any document is processed.
func (s *ReviewService) SetSnippetLoadError(err error) {
	s.snippetErr = err
}

// Grounder exposes the grounding component for timeout configuration.
func (s *ReviewService) Grounder() *Grounder {
	return s.grounder
}

// Review processes a batch of files. Parse failures are recorded as
// failed report entries; only configuration errors fail the run.
func (s *ReviewService) Review(ctx context.Context, paths []string, opts driving.ReviewOptions) (domain.Report, error) {
	if len(paths) == 0 {
		return domain.Report{}, fmt.Errorf("no input files: %w", domain.ErrInvalidInput)
	}

	logger.Section("Document Review")
	logger.Debug("Files: %d, AI: %t, process: %q", len(paths), opts.AI, opts.Process)

	if opts.AI && s.snippetErr != nil {
		return domain.Report{}, fmt.Errorf("reference corpus: %w", s.snippetErr)
	}

	// Validate the process up front so configuration errors abort
	// before any document work. Empty means detect later.
	if opts.Process != "" {
		if _, err := s.checklist.rules.Checklist(opts.Process); err != nil {
			return domain.Report{}, err
		}
	}

	var (
		docs    []*domain.Document
		reviews = make([]domain.DocumentReview, 0, len(paths))
		entry   = make(map[*domain.Document]int)
		types   []domain.DocumentType
	)

	for _, path := range paths {
		doc, err := s.reader.Read(ctx, path)
		if err != nil {
			logger.Warn("Failed to parse %s: %v", path, err)
			reviews = append(reviews, domain.DocumentReview{
				Filename:      filepath.Base(path),
				Type:          domain.TypeUnknown,
				Failed:        true,
				FailureReason: err.Error(),
			})
			continue
		}

		s.classifier.Classify(doc)
		docs = append(docs, doc)
		types = append(types, doc.Type)
		entry[doc] = len(reviews)
		reviews = append(reviews, domain.DocumentReview{
			Filename: doc.Filename,
			Type:     doc.Type,
		})
	}

	process := opts.Process
	if process == "" {
		process = DetectProcess(types)
		logger.Info("Detected process: %s", process)
	}

	// A detected-unknown process has no checklist to evaluate; only an
	// explicitly requested unknown process is a configuration error,
	// and that was rejected above.
	checklist := domain.ChecklistResult{Process: process}
	if process != domain.ProcessUnknown {
		var err error
		checklist, err = s.checklist.Evaluate(process, types)
		if err != nil {
			return domain.Report{}, err
		}
	}

	aiUsed := false
	for _, doc := range docs {
		issues := s.detector.Scan(doc)
		grounded := make([]domain.Issue, 0, len(issues))

		for _, issue := range issues {
			g := s.grounder.Ground(ctx, issue, opts.AI)
			if g.Origin == domain.OriginAI {
				aiUsed = true
			}
			issue.Suggestion = g.Suggestion
			issue.Rationale = g.Rationale
			issue.Citation = g.Citation
			grounded = append(grounded, issue)

			s.annotator.Annotate(doc, issue, g)
		}

		review := &reviews[entry[doc]]
		review.Issues = grounded

		if opts.OutDir != "" {
			out, err := s.writer.WriteAnnotated(ctx, doc, opts.OutDir)
			if err != nil {
				logger.Warn("Failed to write annotated copy of %s: %v", doc.Filename, err)
			} else {
				review.ReviewedPath = out
			}
		}
	}

	report := BuildReport(process, reviews, checklist, aiUsed)

	if s.history != nil {
		if err := s.history.Save(ctx, report); err != nil {
			// History is auxiliary; a failed save does not fail the run.
			logger.Warn("Failed to save report to history: %v", err)
		}
	}

	return report, nil
}

// IsConfigurationError reports whether an error belongs to the class
// that aborts a run before any document is processed.
func IsConfigurationError(err error) bool {
	return errors.Is(err, domain.ErrUnknownProcess) ||
		errors.Is(err, domain.ErrRulesUnavailable) ||
		errors.Is(err, domain.ErrSnippetsUnavailable)
}
