package domain

// SnippetEntry is a labelled reference snippet from the citation corpus.
// Entries are loaded once at startup and never mutated.
type SnippetEntry struct {
	// Label is the bracketed heading from the corpus file. Labels need
	// not be unique; on exact-label lookup the first declaration wins.
	Label string

	// Body is the snippet text with inner newlines collapsed to spaces.
	Body string
}
