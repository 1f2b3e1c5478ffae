package services

import (
	"context"
	"fmt"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/storage/memory"
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// testRules builds a rule store mirroring the shipped defaults closely
// enough for pipeline tests.
func testRules() *memory.RuleStore {
	store := memory.NewRuleStore()

	store.Checklists[domain.ProcessIncorporation] = []domain.DocumentType{
		domain.TypeArticlesOfAssociation,
		domain.TypeMemorandumOfAssociation,
		domain.TypeRegisterOfMembers,
	}

	store.Filename = []driven.ClassifierRule{
		{Keywords: []string{"articles"}, Type: domain.TypeArticlesOfAssociation},
		{Keywords: []string{"memorandum", "mou"}, Type: domain.TypeMemorandumOfAssociation},
		{Keywords: []string{"register"}, Type: domain.TypeRegisterOfMembers},
		{Keywords: []string{"resolution"}, Type: domain.TypeBoardResolution},
		{Keywords: []string{"ubo"}, Type: domain.TypeUBODeclaration},
	}
	store.Content = []driven.ClassifierRule{
		{Keywords: []string{"articles of association"}, Type: domain.TypeArticlesOfAssociation},
		{Keywords: []string{"memorandum of association", "moa"}, Type: domain.TypeMemorandumOfAssociation},
		{Keywords: []string{"register of members", "register of directors"}, Type: domain.TypeRegisterOfMembers},
		{Keywords: []string{"board resolution"}, Type: domain.TypeBoardResolution},
		{Keywords: []string{"ultimate beneficial owner", "ubo"}, Type: domain.TypeUBODeclaration},
	}

	store.RedFlags = []driven.RedFlagRule{
		{
			Category:   domain.CategoryJurisdiction,
			Severity:   domain.SeverityHigh,
			Scope:      driven.ScopeParagraph,
			Keywords:   []string{"uae federal court"},
			Qualifiers: []string{"adgm", "abu dhabi global market"},
			Title:      "References UAE Federal Court instead of ADGM",
		},
		{
			Category: domain.CategoryAmbiguous,
			Severity: domain.SeverityMedium,
			Scope:    driven.ScopeParagraph,
			Keywords: []string{"may, at its discretion", "at its discretion", "best efforts", "non-binding"},
			Title:    "Ambiguous or non-binding language",
		},
		{
			Category: domain.CategoryMissingSignatory,
			Severity: domain.SeverityHigh,
			Scope:    driven.ScopeDocument,
			Keywords: []string{"signature", "signed by", "authorized signatory", "signatories"},
			Title:    "Appears to be missing signatory section",
		},
	}

	store.Templates = map[domain.Category]string{
		domain.CategoryJurisdiction:     "Refer disputes to the ADGM Courts.",
		domain.CategoryMissingSignatory: "Add a signatory section with name, capacity, and date.",
		domain.CategoryAmbiguous:        "Replace hedging language with binding wording.",
		domain.CategoryMissingClause:    "Add the required clause.",
		domain.CategoryMissingDocument:  "Prepare and upload the missing document.",
	}

	return store
}

func testSnippets() *memory.SnippetStore {
	return memory.NewSnippetStore([]domain.SnippetEntry{
		{Label: "ADGM Courts Jurisdiction", Body: "Disputes arising under these articles shall be subject to the jurisdiction of the ADGM Courts, not the UAE Federal Court."},
		{Label: "Signatory Requirements", Body: "Incorporation documents must carry a signatory section with authorized signatory name and capacity."},
		{Label: "Binding Language", Body: "Obligations should use binding language; avoid discretion-based or best efforts wording."},
	})
}

// paragraphs builds a document from plain strings.
func testDocument(filename string, texts ...string) *domain.Document {
	doc := &domain.Document{Filename: filename}
	for i, text := range texts {
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{Index: i, Text: text})
	}
	return doc
}

// fakeGenerator is a scriptable driven.SuggestionGenerator.
type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) ModelName() string            { return "fake" }
func (f *fakeGenerator) Ping(_ context.Context) error { return nil }
func (f *fakeGenerator) Close() error                 { return nil }

// fakeReader serves canned documents keyed by path.
type fakeReader struct {
	docs map[string]*domain.Document
}

func (f *fakeReader) Read(_ context.Context, path string) (*domain.Document, error) {
	doc, ok := f.docs[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, domain.ErrMalformedDocument)
	}
	// Copy so repeated runs start from a clean document.
	clone := *doc
	clone.Paragraphs = make([]domain.Paragraph, len(doc.Paragraphs))
	copy(clone.Paragraphs, doc.Paragraphs)
	return &clone, nil
}

// fakeWriter records annotated-copy requests.
type fakeWriter struct {
	written []string
	err     error
}

func (f *fakeWriter) WriteAnnotated(_ context.Context, doc *domain.Document, outDir string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := outDir + "/" + doc.Filename
	f.written = append(f.written, path)
	return path, nil
}
