package catalog

import (
	"fmt"

	"github.com/amanahlab/sahabat/internal/domain"
)

// Suggestions lists the static popular entries surfaced on /suggest.
type Suggestions struct {
	DoaPopular    []string
	HadisPopular  []string
	QuickSearches []string
}

// Stats reports the loaded dataset sizes for the health endpoint.
type Stats struct {
	DoaCount   int
	HadisCount int
	Intents    []string
}

// Service serves corpus browsing, static suggestions, and dataset stats over
// the read-only corpora.
type Service struct {
	doa     []domain.Item
	hadis   []domain.Item
	intents []domain.IntentRule
}

// New creates a catalog service over the loaded datasets.
func New(doa, hadis []domain.Item, intents []domain.IntentRule) *Service {
	return &Service{doa: doa, hadis: hadis, intents: intents}
}

// Browse returns every item of the named corpus tagged with a full score.
// An unrecognized category yields domain.ErrUnknownCategory.
func (s *Service) Browse(category string) ([]domain.ScoredResult, error) {
	var corpus []domain.Item
	switch domain.Source(category) {
	case domain.SourceDoa:
		corpus = s.doa
	case domain.SourceHadis:
		corpus = s.hadis
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	results := make([]domain.ScoredResult, len(corpus))
	for i, item := range corpus {
		results[i] = domain.ScoredResult{Item: item, Score: 1.0}
	}
	return results, nil
}

// Suggest returns the static popular categories and quick searches.
func (s *Service) Suggest() Suggestions {
	return Suggestions{
		DoaPopular: []string{
			"Doa Sebelum Makan",
			"Doa Naik Kendaraan",
			"Doa Sebelum Tidur",
			"Doa Ketika Sakit",
			"Doa Keluar Rumah",
		},
		HadisPopular: []string{
			"Hadis tentang Akhlak",
			"Hadis tentang Ilmu",
			"Hadis tentang Sabar",
			"Hadis tentang Sosial",
			"Hadis tentang Ibadah",
		},
		QuickSearches: []string{
			"doa pagi",
			"doa malam",
			"hadis sabar",
			"doa rezeki",
			"hadis berbuat baik",
		},
	}
}

// Stats reports corpus counts and the loaded intent rule names.
func (s *Service) Stats() Stats {
	names := make([]string, len(s.intents))
	for i, rule := range s.intents {
		names[i] = rule.Name
	}
	return Stats{
		DoaCount:   len(s.doa),
		HadisCount: len(s.hadis),
		Intents:    names,
	}
}
