package file

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure SnippetStore implements the interface.
var _ driven.SnippetStore = (*SnippetStore)(nil)

// defaultSnippets is the embedded reference corpus, used when no user
// corpus file exists.
//
//go:embed snippets.txt
var defaultSnippets []byte

// labelPattern matches a snippet header line such as "[ADGM Courts]".
var labelPattern = regexp.MustCompile(`^\[(.+?)\]\s*$`)

// SnippetStore loads the labelled reference corpus from a plain-text
// file. The format is a bracketed label line followed by body lines;
// a blank line or the next label terminates the entry. Entries without
// a body are dropped.
type SnippetStore struct {
	entries []domain.SnippetEntry
	byLabel map[string]int
}

// NewSnippetStore loads the corpus from the given file. If path is
// empty or the file does not exist, the embedded defaults are used.
func NewSnippetStore(path string) (*SnippetStore, error) {
	data := defaultSnippets
	if path != "" {
		loaded, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = loaded
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrSnippetsUnavailable, path, err)
		}
	}

	entries, err := parseCorpus(data)
	if err != nil {
		return nil, err
	}

	s := &SnippetStore{
		entries: entries,
		byLabel: make(map[string]int, len(entries)),
	}
	// First occurrence of a label wins lookups.
	for i, entry := range entries {
		if _, ok := s.byLabel[entry.Label]; !ok {
			s.byLabel[entry.Label] = i
		}
	}
	return s, nil
}

// All returns every snippet in corpus order.
func (s *SnippetStore) All() []domain.SnippetEntry {
	return s.entries
}

// ByLabel returns the first snippet declared with the exact label.
func (s *SnippetStore) ByLabel(label string) (domain.SnippetEntry, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return domain.SnippetEntry{}, false
	}
	return s.entries[i], true
}

// parseCorpus scans the corpus line by line, collecting body lines
// under the most recent label. Body lines are joined with single
// spaces.
func parseCorpus(data []byte) ([]domain.SnippetEntry, error) {
	var (
		entries []domain.SnippetEntry
		label   string
		body    []string
	)

	flush := func() {
		if label != "" && len(body) > 0 {
			entries = append(entries, domain.SnippetEntry{
				Label: label,
				Body:  strings.Join(body, " "),
			})
		}
		label, body = "", nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if m := labelPattern.FindStringSubmatch(line); m != nil {
			flush()
			label = strings.TrimSpace(m[1])
			continue
		}
		if label != "" {
			body = append(body, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan corpus: %v", domain.ErrSnippetsUnavailable, err)
	}
	flush()

	return entries, nil
}
