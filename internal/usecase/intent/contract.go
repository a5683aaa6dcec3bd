package intent

// Analyzer extracts the stemmed keyword set of a text.
type Analyzer interface {
	Keywords(text string) []string
}
