package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amanahlab/sahabat/internal/domain"
	"github.com/amanahlab/sahabat/internal/logger"
	"github.com/amanahlab/sahabat/internal/metrics"
	searchuc "github.com/amanahlab/sahabat/internal/usecase/search"
)

// maxResults caps how many ranked entries one answer may carry.
const maxResults = 3

// greetingPhrases are answered with a salutation instead of a search.
var greetingPhrases = map[string]struct{}{
	"halo": {}, "hai": {}, "mulai": {}, "assalamualaikum": {},
	"salam": {}, "test": {}, "tes": {},
}

var (
	emptyQueryExamples = []string{
		"doa sebelum makan",
		"hadis tentang sabar",
		"doa naik kendaraan",
	}
	greetingExamples = []string{
		"doa keluar rumah",
		"hadis tentang ilmu",
		"doa ketika sakit",
	}
	tooGenericExamples = []string{
		"doa sebelum tidur",
		"hadis tentang akhlak",
		"doa memohon rezeki",
	}
	noResultExamples = []string{
		"doa keluar rumah",
		"hadis tentang ilmu",
		"doa untuk orang sakit",
	}
	noResultSuggestions = []string{
		"Gunakan kata kunci lebih spesifik",
		"Contoh: 'doa sebelum makan', 'hadis tentang sabar'",
	}
)

// Service orchestrates one chat query end to end: normalize, detect intent,
// search the corpora, dedupe, rank, and compose the answer. The corpora are
// shared read-only; every request builds only transient state.
type Service struct {
	analyzer Analyzer
	intents  IntentDetector
	searcher Searcher
	greeter  Greeter
	doa      []domain.Item
	hadis    []domain.Item
}

// New creates the chat orchestrator over the loaded corpora.
func New(
	analyzer Analyzer,
	intents IntentDetector,
	searcher Searcher,
	greeter Greeter,
	doa, hadis []domain.Item,
) *Service {
	return &Service{
		analyzer: analyzer,
		intents:  intents,
		searcher: searcher,
		greeter:  greeter,
		doa:      doa,
		hadis:    hadis,
	}
}

// Handle answers a single query. Bad input never fails: empty queries,
// greetings, and stopword-only queries all produce ASK guidance.
func (s *Service) Handle(ctx context.Context, rawQuery string, lat, lng *float64) Response {
	query := s.analyzer.Normalize(rawQuery)
	if query == "" {
		return Response{
			Status:   StatusAsk,
			Message:  "Silakan ketik kebutuhan doa atau hadis 😊",
			Examples: emptyQueryExamples,
		}
	}

	if _, ok := greetingPhrases[query]; ok {
		return s.greet(ctx, query, lat, lng)
	}

	keywords := s.analyzer.Keywords(query)
	if len(keywords) == 0 {
		return Response{
			Status:   StatusAsk,
			Message:  "Kata kunci terlalu umum. Coba lebih spesifik ya! 😊",
			Examples: tooGenericExamples,
		}
	}

	match, hasIntent := s.intents.Detect(rawQuery)
	if hasIntent {
		metrics.IntentMatchesTotal.WithLabelValues(match.Name).Inc()
		logger.FromContext(ctx).Debug("intent detected",
			zap.String("intent", match.Name),
			zap.Float64("confidence", match.Score),
			zap.Strings("triggers", match.MatchedTriggers),
		)
	}

	var results []domain.ScoredResult
	if hasIntent && match.Strong() {
		results = s.intentSearch(match, keywords)
	}

	// The intent pass either missed or came back too thin: fall back to a
	// general search over both corpora, discarding the partial pool.
	if len(results) < 2 {
		doaResults := s.searcher.Search(s.doa, keywords, searchuc.DefaultTopK)
		hadisResults := s.searcher.Search(s.hadis, keywords, searchuc.DefaultTopK)
		results = append(doaResults, hadisResults...)
	}

	results = searchuc.Dedupe(results)
	searchuc.SortByScore(results)

	return s.compose(results, match, hasIntent)
}

// intentSearch searches the canonical query in the intent's corpus, topping
// up from the other corpus with the original keywords when results are thin.
func (s *Service) intentSearch(match domain.IntentMatch, queryKeywords []string) []domain.ScoredResult {
	canonical := s.analyzer.Keywords(match.CanonicalQuery)

	primary, secondary := s.doa, s.hadis
	if match.Type == domain.SourceHadis {
		primary, secondary = s.hadis, s.doa
	}

	results := s.searcher.Search(primary, canonical, searchuc.DefaultTopK)
	if len(results) < maxResults {
		results = append(results, s.searcher.Search(secondary, queryKeywords, searchuc.DefaultTopK)...)
	}
	return results
}

func (s *Service) greet(ctx context.Context, query string, lat, lng *float64) Response {
	timeGreeting := s.greeter.Greeting(ctx, lat, lng)

	salam := "Halo"
	if query == "assalamualaikum" || query == "salam" {
		salam = "Wa'alaikumsalam"
	}

	return Response{
		Status: StatusAsk,
		Message: fmt.Sprintf(
			"%s, %s 😊\n\nSaya Asisten Islami. Silakan tanyakan doa atau hadis yang kamu butuhkan!",
			salam, timeGreeting,
		),
		Examples: greetingExamples,
	}
}

// compose builds the final payload: no-match guidance, or the top three
// results with per-corpus counts.
func (s *Service) compose(results []domain.ScoredResult, match domain.IntentMatch, hasIntent bool) Response {
	if len(results) == 0 {
		return Response{
			Status:      StatusAsk,
			Message:     "Maaf, belum menemukan hasil yang sesuai 😔\n\nCoba dengan kata kunci lain ya!",
			Suggestions: noResultSuggestions,
			Examples:    noResultExamples,
		}
	}

	total := len(results)
	doaCount, hadisCount := 0, 0
	for _, r := range results {
		if r.Item.Source == domain.SourceDoa {
			doaCount++
		} else {
			hadisCount++
		}
	}

	var message string
	switch {
	case hasIntent:
		message = fmt.Sprintf("✨ Ditemukan untuk '%s'", match.Name)
	case doaCount > 0 && hadisCount > 0:
		message = fmt.Sprintf("✨ Ditemukan %d doa dan %d hadis", doaCount, hadisCount)
	case doaCount > 0:
		message = fmt.Sprintf("✨ Ditemukan %d doa", doaCount)
	default:
		message = fmt.Sprintf("✨ Ditemukan %d hadis", hadisCount)
	}

	if total > maxResults {
		message += fmt.Sprintf(" (menampilkan 3 teratas dari %d hasil)", total)
	}

	shown := results
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}

	return Response{
		Status:  StatusOK,
		Message: message,
		Results: shown,
		Summary: &Summary{
			Total:      total,
			DoaCount:   doaCount,
			HadisCount: hadisCount,
			Showing:    len(shown),
		},
	}
}
