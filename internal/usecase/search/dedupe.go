package search

import "github.com/amanahlab/sahabat/internal/domain"

// Dedupe collapses results to one entry per item ID, dropping results without
// an ID. Each ID keeps the position of its first occurrence but the score of
// its best occurrence, so merging unsorted search passes cannot lose the
// higher-scoring duplicate. Callers sort the output by score afterwards.
func Dedupe(results []domain.ScoredResult) []domain.ScoredResult {
	index := make(map[string]int, len(results))
	unique := make([]domain.ScoredResult, 0, len(results))
	for _, r := range results {
		id := r.Item.ID
		if id == "" {
			continue
		}
		if i, ok := index[id]; ok {
			if r.Score > unique[i].Score {
				unique[i] = r
			}
			continue
		}
		index[id] = len(unique)
		unique = append(unique, r)
	}
	return unique
}
