package nlp

import (
	"github.com/RadhiFadlillah/go-sastrawi"
)

// Stemmer reduces a word to its root form.
type Stemmer interface {
	Stem(word string) string
}

// SastrawiStemmer wraps the go-sastrawi Indonesian morphological stemmer.
// Stemming is deterministic and total; the shared dictionary is read-only
// after construction, so one instance serves all requests.
type SastrawiStemmer struct {
	stemmer sastrawi.Stemmer
}

// NewSastrawiStemmer creates a stemmer backed by the default Indonesian root
// word dictionary.
func NewSastrawiStemmer() *SastrawiStemmer {
	return &SastrawiStemmer{stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary())}
}

// Stem returns the root form of word.
func (s *SastrawiStemmer) Stem(word string) string {
	if word == "" {
		return word
	}
	return s.stemmer.Stem(word)
}
