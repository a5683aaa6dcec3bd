package chat

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/amanahlab/sahabat/internal/domain"
	"github.com/amanahlab/sahabat/internal/nlp"
)

// --- Mocks ---

type identityStemmer struct{}

func (identityStemmer) Stem(word string) string { return word }

type searchCall struct {
	source   domain.Source
	keywords []string
}

// mockSearcher returns canned results per corpus and records every call.
type mockSearcher struct {
	doaResults   []domain.ScoredResult
	hadisResults []domain.ScoredResult
	calls        []searchCall
}

func (m *mockSearcher) Search(corpus []domain.Item, queryKeywords []string, _ int) []domain.ScoredResult {
	source := domain.SourceDoa
	if len(corpus) > 0 {
		source = corpus[0].Source
	}
	m.calls = append(m.calls, searchCall{source: source, keywords: queryKeywords})
	if source == domain.SourceHadis {
		return append([]domain.ScoredResult(nil), m.hadisResults...)
	}
	return append([]domain.ScoredResult(nil), m.doaResults...)
}

type mockDetector struct {
	match domain.IntentMatch
	found bool
}

func (m *mockDetector) Detect(_ string) (domain.IntentMatch, bool) {
	return m.match, m.found
}

type mockGreeter struct {
	greeting string
	called   bool
}

func (m *mockGreeter) Greeting(_ context.Context, _, _ *float64) string {
	m.called = true
	return m.greeting
}

func doaScored(id string, score float64) domain.ScoredResult {
	return domain.ScoredResult{Item: domain.NewDoa(id, "judul "+id, "arti", ""), Score: score}
}

func hadisScored(id string, score float64) domain.ScoredResult {
	return domain.ScoredResult{Item: domain.NewHadis(id, "tema "+id, "arti", nil), Score: score}
}

type fixture struct {
	svc      *Service
	searcher *mockSearcher
	detector *mockDetector
	greeter  *mockGreeter
}

func newFixture() *fixture {
	searcher := &mockSearcher{}
	detector := &mockDetector{}
	greeter := &mockGreeter{greeting: "Selamat pagi"}
	doa := []domain.Item{domain.NewDoa("doa-1", "Doa Sebelum Makan", "arti", "")}
	hadis := []domain.Item{domain.NewHadis("hadis-1", "Hadis tentang Sabar", "arti", nil)}
	svc := New(nlp.NewAnalyzer(identityStemmer{}), detector, searcher, greeter, doa, hadis)
	return &fixture{svc: svc, searcher: searcher, detector: detector, greeter: greeter}
}

// --- Tests ---

func TestHandle_EmptyQuery(t *testing.T) {
	f := newFixture()

	resp := f.svc.Handle(context.Background(), "   ", nil, nil)
	if resp.Status != StatusAsk {
		t.Fatalf("status = %q, want ASK", resp.Status)
	}
	if len(resp.Results) != 0 {
		t.Error("empty query must not carry results")
	}
	if len(resp.Examples) == 0 {
		t.Error("expected example queries")
	}
	if len(f.searcher.calls) != 0 {
		t.Error("empty query must not trigger a search")
	}
	if f.greeter.called {
		t.Error("empty query must not resolve a greeting")
	}
}

func TestHandle_Greeting(t *testing.T) {
	f := newFixture()

	resp := f.svc.Handle(context.Background(), "Halo", nil, nil)
	if resp.Status != StatusAsk {
		t.Fatalf("status = %q, want ASK", resp.Status)
	}
	if !f.greeter.called {
		t.Error("expected the greeter to be consulted")
	}
	if !strings.Contains(resp.Message, "Selamat pagi") {
		t.Errorf("message %q should contain the time greeting", resp.Message)
	}
	if !strings.Contains(resp.Message, "Halo") {
		t.Errorf("message %q should open with Halo", resp.Message)
	}
	if len(f.searcher.calls) != 0 {
		t.Error("greetings must not trigger a search")
	}
}

func TestHandle_GreetingSalam(t *testing.T) {
	f := newFixture()

	resp := f.svc.Handle(context.Background(), "assalamualaikum", nil, nil)
	if !strings.Contains(resp.Message, "Wa'alaikumsalam") {
		t.Errorf("message %q should answer the salam", resp.Message)
	}
}

func TestHandle_StopwordsOnly(t *testing.T) {
	f := newFixture()

	resp := f.svc.Handle(context.Background(), "yang itu dan", nil, nil)
	if resp.Status != StatusAsk {
		t.Fatalf("status = %q, want ASK", resp.Status)
	}
	if !strings.Contains(resp.Message, "terlalu umum") {
		t.Errorf("message = %q, want too-generic guidance", resp.Message)
	}
	if len(f.searcher.calls) != 0 {
		t.Error("stopword-only query must not trigger a search")
	}
}

func TestHandle_StrongIntentRoutesToItsCorpus(t *testing.T) {
	f := newFixture()
	f.detector.match = domain.IntentMatch{
		Name: "doa_makan", Type: domain.SourceDoa,
		CanonicalQuery: "doa sebelum makan", Score: 2.0,
	}
	f.detector.found = true
	f.searcher.doaResults = []domain.ScoredResult{
		doaScored("d1", 0.9), doaScored("d2", 0.8), doaScored("d3", 0.7),
	}

	resp := f.svc.Handle(context.Background(), "mau makan", nil, nil)
	if resp.Status != StatusOK {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if len(f.searcher.calls) != 1 {
		t.Fatalf("expected 1 search call, got %d", len(f.searcher.calls))
	}
	call := f.searcher.calls[0]
	if call.source != domain.SourceDoa {
		t.Errorf("first search hit %q, want doa corpus", call.source)
	}
	// The canonical query's keywords drive the intent search, not the raw
	// query's.
	if !reflect.DeepEqual(call.keywords, []string{"doa", "sebelum", "makan"}) {
		t.Errorf("intent search keywords = %v", call.keywords)
	}
	if !strings.Contains(resp.Message, "doa_makan") {
		t.Errorf("message = %q, want intent name", resp.Message)
	}
}

func TestHandle_StrongIntentTopsUpFromOtherCorpus(t *testing.T) {
	f := newFixture()
	f.detector.match = domain.IntentMatch{
		Name: "hadis_sabar", Type: domain.SourceHadis,
		CanonicalQuery: "hadis tentang sabar", Score: 1.0,
	}
	f.detector.found = true
	f.searcher.hadisResults = []domain.ScoredResult{hadisScored("h1", 0.9)}
	f.searcher.doaResults = []domain.ScoredResult{doaScored("d1", 0.5)}

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Status != StatusOK {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	// Thin primary pass (1 < 3) tops up from the doa corpus with the
	// original keywords; 2 results then skip the general fallback.
	if len(f.searcher.calls) != 2 {
		t.Fatalf("expected 2 search calls, got %d: %v", len(f.searcher.calls), f.searcher.calls)
	}
	if f.searcher.calls[0].source != domain.SourceHadis {
		t.Errorf("primary corpus = %q, want hadis", f.searcher.calls[0].source)
	}
	if f.searcher.calls[1].source != domain.SourceDoa {
		t.Errorf("top-up corpus = %q, want doa", f.searcher.calls[1].source)
	}
	if !reflect.DeepEqual(f.searcher.calls[1].keywords, []string{"sabar"}) {
		t.Errorf("top-up keywords = %v, want the original query's", f.searcher.calls[1].keywords)
	}
	if resp.Summary.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Summary.Total)
	}
}

func TestHandle_NoIntentSearchesBothCorpora(t *testing.T) {
	f := newFixture()
	f.searcher.doaResults = []domain.ScoredResult{doaScored("d1", 0.6)}
	f.searcher.hadisResults = []domain.ScoredResult{hadisScored("h1", 0.8)}

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Status != StatusOK {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if len(f.searcher.calls) != 2 {
		t.Fatalf("expected 2 search calls, got %d", len(f.searcher.calls))
	}
	// Merged pool is re-sorted by score across corpora.
	if resp.Results[0].Item.ID != "h1" {
		t.Errorf("top result = %q, want h1", resp.Results[0].Item.ID)
	}
	if resp.Summary.DoaCount != 1 || resp.Summary.HadisCount != 1 {
		t.Errorf("summary counts = %+v", resp.Summary)
	}
}

func TestHandle_DeduplicatesAcrossPasses(t *testing.T) {
	f := newFixture()
	f.searcher.doaResults = []domain.ScoredResult{doaScored("same", 0.4)}
	f.searcher.hadisResults = []domain.ScoredResult{
		{Item: domain.NewHadis("same", "tema", "arti", nil), Score: 0.9},
	}

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Status != StatusOK {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if resp.Summary.Total != 1 {
		t.Fatalf("total = %d, want 1 after dedupe", resp.Summary.Total)
	}
	// The higher-scoring duplicate survives.
	if resp.Results[0].Score != 0.9 {
		t.Errorf("kept score = %v, want 0.9", resp.Results[0].Score)
	}
}

func TestHandle_TruncatesToThree(t *testing.T) {
	f := newFixture()
	f.searcher.doaResults = []domain.ScoredResult{
		doaScored("d1", 0.9), doaScored("d2", 0.8), doaScored("d3", 0.7),
	}
	f.searcher.hadisResults = []domain.ScoredResult{
		hadisScored("h1", 0.6), hadisScored("h2", 0.5),
	}

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Status != StatusOK {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if len(resp.Results) != 3 {
		t.Errorf("results = %d, want 3", len(resp.Results))
	}
	if resp.Summary.Total != 5 || resp.Summary.Showing != 3 {
		t.Errorf("summary = %+v, want total 5 showing 3", resp.Summary)
	}
	if !strings.Contains(resp.Message, "menampilkan 3 teratas dari 5 hasil") {
		t.Errorf("message = %q, want truncation note", resp.Message)
	}
}

func TestHandle_ShowingNeverExceedsTotal(t *testing.T) {
	f := newFixture()
	f.searcher.doaResults = []domain.ScoredResult{doaScored("d1", 0.9), doaScored("d2", 0.8)}

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Summary.Showing != 2 || resp.Summary.Total != 2 {
		t.Errorf("summary = %+v, want showing == total == 2", resp.Summary)
	}
}

func TestHandle_NoResults(t *testing.T) {
	f := newFixture()

	resp := f.svc.Handle(context.Background(), "sabar", nil, nil)
	if resp.Status != StatusAsk {
		t.Fatalf("status = %q, want ASK", resp.Status)
	}
	if len(resp.Suggestions) == 0 || len(resp.Examples) == 0 {
		t.Error("no-match response must carry suggestions and examples")
	}
	if resp.Summary != nil {
		t.Error("no-match response must not carry a summary")
	}
}

func TestHandle_Idempotent(t *testing.T) {
	f := newFixture()
	f.searcher.doaResults = []domain.ScoredResult{doaScored("d1", 0.9), doaScored("d2", 0.4)}
	f.searcher.hadisResults = []domain.ScoredResult{hadisScored("h1", 0.6)}

	first := f.svc.Handle(context.Background(), "doa makan", nil, nil)
	second := f.svc.Handle(context.Background(), "doa makan", nil, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("responses differ:\n%+v\n%+v", first, second)
	}
}
