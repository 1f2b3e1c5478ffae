package driven

import (
	"context"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

// DocumentReader parses a word-processing file into the document model.
type DocumentReader interface {
	// Read parses the file at path into an ordered paragraph sequence.
	// A structurally unparsable file returns an error wrapping
	// domain.ErrMalformedDocument; the caller excludes that document
	// from the batch without aborting the run.
	Read(ctx context.Context, path string) (*domain.Document, error)
}

// DocumentWriter renders an annotated copy of a reviewed document.
type DocumentWriter interface {
	// WriteAnnotated writes a copy of the original file with the
	// document's comments inserted as highlighted inline runs. All
	// pre-existing content is preserved. Returns the output path.
	WriteAnnotated(ctx context.Context, doc *domain.Document, outDir string) (string, error)
}
