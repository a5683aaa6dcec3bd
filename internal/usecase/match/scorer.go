package match

import (
	"math"
	"strings"
)

const (
	// keywordBonus is added once per query word found in the target's
	// curated keyword phrases.
	keywordBonus = 0.2
	// phraseBonus is added when the whole query appears verbatim in the
	// stemmed target text.
	phraseBonus = 0.3
	// partialBonus is added once per query word that is a substring of (or
	// contains) some target word. Never per pair: the target scan stops at
	// the first hit so a query word cannot be counted twice.
	partialBonus = 0.1
	// partialMinLen keeps the substring signal away from short words, where
	// it is pure noise.
	partialMinLen = 4
)

// Scorer computes a bounded lexical similarity between a query keyword set
// and a candidate document. Scoring is a pure function of its inputs.
type Scorer struct {
	analyzer Analyzer
}

// NewScorer creates a scorer on top of the given analyzer.
func NewScorer(analyzer Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score combines four signals: word overlap with the stemmed target text,
// overlap with the target's keyword phrases, a verbatim phrase match, and a
// partial-substring match for inflection-heavy words. The sum is clamped to
// [0, 1] and rounded to 3 decimals. An empty keyword set scores 0.
func (s *Scorer) Score(queryKeywords []string, targetText string, targetPhrases []string) float64 {
	if len(queryKeywords) == 0 {
		return 0
	}

	stemmed := s.analyzer.Preprocess(targetText)
	targetWords := make(map[string]struct{})
	for _, w := range strings.Fields(stemmed) {
		targetWords[w] = struct{}{}
	}

	overlap := 0
	for _, qw := range queryKeywords {
		if _, ok := targetWords[qw]; ok {
			overlap++
		}
	}
	score := float64(overlap) / float64(len(queryKeywords))

	if len(targetPhrases) > 0 {
		phraseWords := make(map[string]struct{})
		for _, phrase := range targetPhrases {
			for _, w := range s.analyzer.Keywords(phrase) {
				phraseWords[w] = struct{}{}
			}
		}
		for _, qw := range queryKeywords {
			if _, ok := phraseWords[qw]; ok {
				score += keywordBonus
			}
		}
	}

	if strings.Contains(stemmed, strings.Join(queryKeywords, " ")) {
		score += phraseBonus
	}

	for _, qw := range queryKeywords {
		if len(qw) < partialMinLen {
			continue
		}
		for tw := range targetWords {
			if len(tw) < partialMinLen {
				continue
			}
			if strings.Contains(tw, qw) || strings.Contains(qw, tw) {
				score += partialBonus
				break
			}
		}
	}

	return round3(math.Min(score, 1.0))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
