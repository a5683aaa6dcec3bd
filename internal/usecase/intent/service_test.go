package intent

import (
	"testing"

	"github.com/amanahlab/sahabat/internal/domain"
	"github.com/amanahlab/sahabat/internal/nlp"
)

type identityStemmer struct{}

func (identityStemmer) Stem(word string) string { return word }

func testRules() []domain.IntentRule {
	return []domain.IntentRule{
		{
			Name:           "doa_makan",
			Type:           domain.SourceDoa,
			Triggers:       []string{"sebelum makan", "makan"},
			CanonicalQuery: "doa sebelum makan",
		},
		{
			Name:           "doa_perjalanan",
			Type:           domain.SourceDoa,
			Triggers:       []string{"naik kendaraan", "bepergian"},
			CanonicalQuery: "doa naik kendaraan",
		},
		{
			Name:           "hadis_sabar",
			Type:           domain.SourceHadis,
			Triggers:       []string{"hadis sabar", "kesabaran"},
			CanonicalQuery: "hadis tentang sabar",
		},
	}
}

func newTestService(rules []domain.IntentRule) *Service {
	return New(rules, nlp.NewAnalyzer(identityStemmer{}))
}

func TestDetect_VerbatimTrigger(t *testing.T) {
	svc := newTestService(testRules())

	match, ok := svc.Detect("doa sebelum makan")
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Name != "doa_makan" {
		t.Errorf("intent = %q, want doa_makan", match.Name)
	}
	// Both triggers appear verbatim: "sebelum makan" and "makan".
	if match.Score != 2.0 {
		t.Errorf("score = %v, want 2.0", match.Score)
	}
	if !match.Strong() {
		t.Error("expected a strong match")
	}
	if match.CanonicalQuery != "doa sebelum makan" {
		t.Errorf("canonical query = %q", match.CanonicalQuery)
	}
}

func TestDetect_StemmedKeywordFallback(t *testing.T) {
	svc := newTestService(testRules())

	// "naik kendaraan" is not a substring, but "kendaraan" is in the
	// extracted keyword set, worth half a point.
	match, ok := svc.Detect("kendaraan apa")
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Name != "doa_perjalanan" {
		t.Errorf("intent = %q, want doa_perjalanan", match.Name)
	}
	if match.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", match.Score)
	}
	if match.Strong() {
		t.Error("half-point match must not be strong")
	}
}

func TestDetect_NoMatch(t *testing.T) {
	svc := newTestService(testRules())

	if _, ok := svc.Detect("cuaca hari ini"); ok {
		t.Error("expected no intent for an unrelated query")
	}
}

func TestDetect_FirstRuleWinsTies(t *testing.T) {
	rules := []domain.IntentRule{
		{Name: "first", Type: domain.SourceDoa, Triggers: []string{"makan"}, CanonicalQuery: "a"},
		{Name: "second", Type: domain.SourceDoa, Triggers: []string{"makan"}, CanonicalQuery: "b"},
	}
	svc := newTestService(rules)

	match, ok := svc.Detect("makan")
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Name != "first" {
		t.Errorf("intent = %q, want first (load order breaks ties)", match.Name)
	}
}

func TestDetect_TriggerCountsOnce(t *testing.T) {
	rules := []domain.IntentRule{
		{Name: "r", Type: domain.SourceDoa, Triggers: []string{"sebelum makan"}, CanonicalQuery: "a"},
	}
	svc := newTestService(rules)

	// Verbatim hit must not also collect the stemmed half point.
	match, ok := svc.Detect("doa sebelum makan")
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", match.Score)
	}
}

func TestDetect_MatchedTriggers(t *testing.T) {
	svc := newTestService(testRules())

	match, ok := svc.Detect("doa sebelum makan")
	if !ok {
		t.Fatal("expected an intent match")
	}
	if len(match.MatchedTriggers) != 2 {
		t.Errorf("matched triggers = %v, want 2 entries", match.MatchedTriggers)
	}
}

func TestDetect_EmptyRules(t *testing.T) {
	svc := newTestService(nil)

	if _, ok := svc.Detect("doa sebelum makan"); ok {
		t.Error("expected no match with an empty rule table")
	}
}
