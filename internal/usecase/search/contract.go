package search

// Scorer computes the similarity between a query keyword set and a candidate
// document.
type Scorer interface {
	Score(queryKeywords []string, targetText string, targetPhrases []string) float64
}
