package search

import (
	"sort"

	"github.com/amanahlab/sahabat/internal/domain"
)

const (
	// minScore is a deliberately low cutoff: with short colloquial queries a
	// strict threshold hides too many candidates.
	minScore = 0.1
	// DefaultTopK bounds a single corpus pass.
	DefaultTopK = 10
)

// Service ranks the items of one corpus against a query keyword set.
type Service struct {
	scorer Scorer
}

// New creates a corpus searcher.
func New(scorer Scorer) *Service {
	return &Service{scorer: scorer}
}

// Search scores every item and returns at most topK results above the minimum
// threshold, descending by score. The sort is stable so ties keep corpus
// order. Items without an ID are skipped. topK <= 0 means DefaultTopK.
func (s *Service) Search(corpus []domain.Item, queryKeywords []string, topK int) []domain.ScoredResult {
	if topK <= 0 {
		topK = DefaultTopK
	}

	var results []domain.ScoredResult
	for _, item := range corpus {
		if item.ID == "" {
			continue
		}
		score := s.scorer.Score(queryKeywords, item.SearchableText(), item.Keywords)
		if score > minScore {
			results = append(results, domain.ScoredResult{Item: item, Score: score})
		}
	}

	SortByScore(results)
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// SortByScore sorts results descending by score, preserving input order on
// ties.
func SortByScore(results []domain.ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
