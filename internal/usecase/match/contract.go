package match

// Analyzer provides the text pipeline the scorer shares with the rest of the
// engine.
type Analyzer interface {
	Preprocess(text string) string
	Keywords(text string) []string
}
