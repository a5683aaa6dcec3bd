package domain

// ScoredResult pairs a corpus item with its match score for one query.
// Transient: built per request, never persisted.
type ScoredResult struct {
	Item  Item
	Score float64 // in [0, 1], rounded to 3 decimals
}
