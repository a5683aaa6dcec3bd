package domain

// strongIntentScore is the confidence above which the intent alone decides
// which corpus to search first.
const strongIntentScore = 1.0

// IntentRule maps trigger phrases to a canonical query for one corpus.
// Rules are loaded once at startup as an ordered list; detection iterates
// them in load order so tie-breaking stays deterministic.
type IntentRule struct {
	Name           string
	Type           Source
	Triggers       []string
	CanonicalQuery string
}

// IntentMatch is a detected intent for a single query.
type IntentMatch struct {
	Name            string
	Type            Source
	CanonicalQuery  string
	Score           float64
	MatchedTriggers []string
}

// Strong reports whether the match is confident enough to route the search
// to its corpus before falling back to a general search.
func (m IntentMatch) Strong() bool {
	return m.Score >= strongIntentScore
}
