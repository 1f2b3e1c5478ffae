package services

import (
	"strings"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// contentScanLimit caps how many leading paragraphs the content
// fallback inspects.
const contentScanLimit = 30

// Classifier infers a document's semantic type from its filename,
// falling back to content inspection. Classification never fails; an
// unmatched document is simply TypeUnknown.
type Classifier struct {
	rules driven.RuleStore
}

// NewClassifier creates a new classifier backed by the rule store's
// keyword tables.
func NewClassifier(rules driven.RuleStore) *Classifier {
	return &Classifier{rules: rules}
}

// Classify infers the type and assigns it to the document. The type is
// set exactly once; a document that already carries a known type is
// left untouched.
func (c *Classifier) Classify(doc *domain.Document) domain.DocumentType {
	if doc.Type.Known() {
		return doc.Type
	}

	t := matchRules(c.rules.FilenameRules(), doc.Filename)
	if t == domain.TypeUnknown {
		logger.Debug("Filename gave no type for %s, scanning content", doc.Filename)
		t = matchRules(c.rules.ContentRules(), leadingText(doc, contentScanLimit))
	}

	doc.Type = t
	logger.Debug("Classified %s as %s", doc.Filename, t)
	return t
}

// matchRules returns the type of the first rule with a keyword hit.
func matchRules(rules []driven.ClassifierRule, text string) domain.DocumentType {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Type
			}
		}
	}
	return domain.TypeUnknown
}

// leadingText joins the first n paragraphs of the document.
func leadingText(doc *domain.Document, n int) string {
	if len(doc.Paragraphs) < n {
		n = len(doc.Paragraphs)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(doc.Paragraphs[i].Text)
	}
	return b.String()
}

// DetectProcess infers the target process from the classified types of
// a document set. Any incorporation marker type selects the
// incorporation process.
func DetectProcess(types []domain.DocumentType) domain.Process {
	for _, t := range types {
		if t.Known() {
			return domain.ProcessIncorporation
		}
	}
	return domain.ProcessUnknown
}
