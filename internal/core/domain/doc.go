// Package domain defines the core business entities for Docketry.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies beyond identifiers and defines the
// fundamental types:
//
//   - Document: A parsed word-processing document as ordered paragraphs
//   - DocumentType: The inferred semantic type of a document
//   - Issue: A detected compliance problem (red flag or missing item)
//   - SnippetEntry: A labelled reference snippet for citation grounding
//   - Grounding: A suggestion with rationale and optional citation
//   - Report: The aggregate outcome of a review run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
package domain
