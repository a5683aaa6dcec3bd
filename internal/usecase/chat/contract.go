package chat

import (
	"context"

	"github.com/amanahlab/sahabat/internal/domain"
)

// Analyzer provides query normalization and keyword extraction.
type Analyzer interface {
	Normalize(text string) string
	Keywords(text string) []string
}

// Searcher runs a ranked search over one corpus.
type Searcher interface {
	Search(corpus []domain.Item, queryKeywords []string, topK int) []domain.ScoredResult
}

// IntentDetector scores raw queries against the intent rule table.
type IntentDetector interface {
	Detect(rawQuery string) (domain.IntentMatch, bool)
}

// Greeter resolves a time-of-day greeting for optional coordinates. It must
// never fail: on any lookup problem it returns a neutral fallback greeting.
type Greeter interface {
	Greeting(ctx context.Context, lat, lng *float64) string
}
