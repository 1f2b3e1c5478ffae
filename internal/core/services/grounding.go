package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// Default grounding parameters.
const (
	// DefaultTopK is how many snippets are embedded in the prompt.
	DefaultTopK = 3

	// DefaultGenerateTimeout bounds a single generator call so a slow
	// model cannot stall the batch.
	DefaultGenerateTimeout = 60 * time.Second
)

// Grounder resolves a suggestion for an issue: AI-derived with a
// snippet citation when possible, templated otherwise. The AI path is
// best-effort; no failure of the generator ever propagates.
type Grounder struct {
	snippets  driven.SnippetStore
	rules     driven.RuleStore
	generator driven.SuggestionGenerator
	timeout   time.Duration
	topK      int
}

// NewGrounder creates a new grounder. The generator is optional (can
// be nil); without it every call takes the templated path.
func NewGrounder(snippets driven.SnippetStore, rules driven.RuleStore, generator driven.SuggestionGenerator) *Grounder {
	return &Grounder{
		snippets:  snippets,
		rules:     rules,
		generator: generator,
		timeout:   DefaultGenerateTimeout,
		topK:      DefaultTopK,
	}
}

// SetTimeout overrides the per-call generator timeout.
func (g *Grounder) SetTimeout(d time.Duration) {
	if d > 0 {
		g.timeout = d
	}
}

// Ground returns the grounding for an issue. With aiEnabled false or
// no generator configured the templated path is taken directly; any
// generator failure (timeout, transport, malformed response) degrades
// to the same path.
func (g *Grounder) Ground(ctx context.Context, issue domain.Issue, aiEnabled bool) domain.Grounding {
	if !aiEnabled || g.generator == nil {
		return g.template(issue)
	}

	result, err := g.aiGround(ctx, issue)
	if err != nil {
		logger.Warn("AI suggestion unavailable for %s/%s: %v", issue.Document, issue.Category, err)
		return g.template(issue)
	}
	return result
}

// template builds the non-AI fallback keyed by issue category.
func (g *Grounder) template(issue domain.Issue) domain.Grounding {
	return domain.Grounding{
		Origin:     domain.OriginTemplate,
		Suggestion: g.rules.Template(issue.Category),
	}
}

// aiGround selects snippets, prompts the generator, and parses the
// response.
func (g *Grounder) aiGround(ctx context.Context, issue domain.Issue) (domain.Grounding, error) {
	top := g.topSnippets(issue)
	if len(top) == 0 {
		return domain.Grounding{}, fmt.Errorf("no snippet matches issue %q", issue.Title)
	}

	prompt := buildPrompt(issue, top)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.generator.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   600,
		Temperature: 0.2,
	})
	if err != nil {
		return domain.Grounding{}, fmt.Errorf("generate: %w", err)
	}

	rationale, suggestion, err := parseSuggestion(raw)
	if err != nil {
		return domain.Grounding{}, fmt.Errorf("parse response: %w", err)
	}

	label := top[0].Label
	return domain.Grounding{
		Origin:     domain.OriginAI,
		Rationale:  rationale,
		Suggestion: suggestion,
		Citation:   &label,
	}, nil
}

// topSnippets scores every snippet by keyword overlap with the issue
// and returns the best topK. Ties keep declaration order: a later
// snippet replaces an earlier one only on a strictly higher score.
func (g *Grounder) topSnippets(issue domain.Issue) []domain.SnippetEntry {
	query := tokenSet(issue.Title + " " + string(issue.Category) + " " + issue.Match)
	if len(query) == 0 {
		return nil
	}

	all := g.snippets.All()
	type scored struct {
		entry domain.SnippetEntry
		score int
	}
	ranked := make([]scored, 0, len(all))
	for _, entry := range all {
		s := overlap(query, tokenSet(entry.Label+" "+entry.Body))
		if s > 0 {
			ranked = append(ranked, scored{entry: entry, score: s})
		}
	}

	// Stable sort keeps declaration order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	k := g.topK
	if len(ranked) < k {
		k = len(ranked)
	}
	top := make([]domain.SnippetEntry, 0, k)
	for i := 0; i < k; i++ {
		top = append(top, ranked[i].entry)
	}
	return top
}

var wordPattern = regexp.MustCompile(`[a-z]+`)

// tokenSet lowercases and splits text into its distinct alphabetic
// tokens.
func tokenSet(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

// buildPrompt embeds the issue context and the selected snippets.
func buildPrompt(issue domain.Issue, snippets []domain.SnippetEntry) string {
	var refs strings.Builder
	for _, s := range snippets {
		fmt.Fprintf(&refs, "- %s: %s\n", s.Label, s.Body)
	}

	return fmt.Sprintf(`You are a legal assistant focused on ADGM compliance.
For the issue below, using the retrieved ADGM reference snippets:
1) Give a brief rationale explaining the problem in the ADGM context.
2) Suggest a short, compliant clause or wording to fix it.

Retrieved ADGM references:
%s
Issue: %s (category: %s, severity: %s)
Matched text: %q
Document: %s (%s)

Return ONLY a JSON object with keys "rationale" and "suggestion".`,
		refs.String(), issue.Title, issue.Category, issue.Severity,
		issue.Match, issue.Document, issue.DocumentType.DisplayName())
}

// aiSuggestion is the expected generator response payload.
type aiSuggestion struct {
	Rationale  string `json:"rationale"`
	Suggestion string `json:"suggestion"`
}

// parseSuggestion extracts the JSON object from the generator's free
// text. Models wrap JSON in prose or code fences often enough that the
// outermost braces are located manually first.
func parseSuggestion(raw string) (rationale, suggestion string, err error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", "", fmt.Errorf("no JSON object in response")
	}

	var parsed aiSuggestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(parsed.Suggestion) == "" {
		return "", "", fmt.Errorf("response missing suggestion")
	}
	return strings.TrimSpace(parsed.Rationale), strings.TrimSpace(parsed.Suggestion), nil
}
