package domain

// GroundingOrigin tags which path produced a suggestion.
type GroundingOrigin string

// Grounding origins. The templated path is a first-class outcome,
// not an error case.
const (
	OriginAI       GroundingOrigin = "ai"
	OriginTemplate GroundingOrigin = "template"
)

// Grounding is the result of resolving a suggestion for an issue,
// either AI-derived with a snippet citation or templated.
type Grounding struct {
	// Origin tags the path that produced this result.
	Origin GroundingOrigin

	// Rationale explains the problem in context. Empty on the
	// templated path.
	Rationale string

	// Suggestion is the recommended fix wording.
	Suggestion string

	// Citation is the label of the snippet the suggestion is grounded
	// on, nil on the templated path.
	Citation *string
}

// CommentText builds the display text inserted into the document.
// A nil citation renders as "N/A".
func (g Grounding) CommentText() string {
	source := "N/A"
	if g.Citation != nil && *g.Citation != "" {
		source = *g.Citation
	}
	return "AI Suggestion: " + g.Suggestion + " | Source: " + source
}
