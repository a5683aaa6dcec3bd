package intent

import (
	"strings"

	"github.com/amanahlab/sahabat/internal/domain"
)

const (
	// triggerHit rewards a trigger phrase appearing verbatim in the raw query.
	triggerHit = 1.0
	// stemmedHit rewards a stemmed trigger word appearing in the query's
	// keyword set.
	stemmedHit = 0.5
	// minConfidence is the floor under which no intent is reported.
	minConfidence = 0.5
)

// Service scores queries against the loaded intent rule table. The table is
// immutable after construction.
type Service struct {
	rules    []domain.IntentRule
	analyzer Analyzer
}

// New creates an intent detector over the given rules. Rules are evaluated in
// slice order; on equal scores the earlier rule wins.
func New(rules []domain.IntentRule, analyzer Analyzer) *Service {
	return &Service{rules: rules, analyzer: analyzer}
}

// Detect returns the best-scoring intent for the raw query, or false when no
// rule reaches the confidence floor. Each trigger phrase contributes at most
// once: a verbatim substring hit scores 1.0, otherwise a stemmed keyword hit
// scores 0.5.
func (s *Service) Detect(rawQuery string) (domain.IntentMatch, bool) {
	queryLower := strings.ToLower(rawQuery)
	queryWords := make(map[string]struct{})
	for _, w := range s.analyzer.Keywords(rawQuery) {
		queryWords[w] = struct{}{}
	}

	var best domain.IntentMatch
	for _, rule := range s.rules {
		var score float64
		var matched []string

		for _, trigger := range rule.Triggers {
			if strings.Contains(queryLower, strings.ToLower(trigger)) {
				score += triggerHit
				matched = append(matched, trigger)
				continue
			}
			for _, tw := range s.analyzer.Keywords(trigger) {
				if _, ok := queryWords[tw]; ok {
					score += stemmedHit
					matched = append(matched, trigger)
					break
				}
			}
		}

		if score > best.Score {
			best = domain.IntentMatch{
				Name:            rule.Name,
				Type:            rule.Type,
				CanonicalQuery:  rule.CanonicalQuery,
				Score:           score,
				MatchedTriggers: matched,
			}
		}
	}

	if best.Score < minConfidence {
		return domain.IntentMatch{}, false
	}
	return best, true
}
