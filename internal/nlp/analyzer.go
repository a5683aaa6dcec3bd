package nlp

import (
	"regexp"
	"strings"
)

// stopwords contains common Indonesian function words excluded from keyword
// extraction.
var stopwords = map[string]struct{}{
	"yang": {}, "untuk": {}, "pada": {}, "adalah": {}, "dari": {}, "di": {},
	"ke": {}, "dalam": {}, "dengan": {}, "oleh": {}, "ini": {}, "itu": {},
	"dan": {}, "atau": {}, "akan": {}, "ada": {}, "bisa": {}, "dapat": {},
	"juga": {}, "lebih": {}, "saat": {}, "ketika": {}, "tentang": {},
	"apa": {}, "siapa": {}, "mana": {}, "bagaimana": {}, "kenapa": {},
	"kapan": {}, "dimana": {},
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Analyzer turns free text into normalized, stemmed keyword sets. It holds no
// per-request state and is safe for concurrent use.
type Analyzer struct {
	stemmer Stemmer
}

// NewAnalyzer creates an analyzer on top of the given stemmer.
func NewAnalyzer(stemmer Stemmer) *Analyzer {
	return &Analyzer{stemmer: stemmer}
}

// Normalize lowercases, trims, and collapses whitespace runs to one space.
func (a *Analyzer) Normalize(text string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// Preprocess lowercases, strips everything outside [a-z0-9\s], and stems each
// remaining word.
func (a *Analyzer) Preprocess(text string) string {
	text = nonAlnum.ReplaceAllString(strings.ToLower(text), "")
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = a.stemmer.Stem(w)
	}
	return strings.Join(words, " ")
}

// Keywords extracts the stemmed keyword set of text: stopwords and
// single-character tokens dropped, duplicates collapsed, first-seen order
// kept. Empty input yields an empty set, which callers treat as "no usable
// signal" rather than an error.
func (a *Analyzer) Keywords(text string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, w := range strings.Fields(a.Preprocess(text)) {
		if len(w) <= 1 {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}
