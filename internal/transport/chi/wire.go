package chi

import (
	"github.com/amanahlab/sahabat/internal/domain"
	cataloguc "github.com/amanahlab/sahabat/internal/usecase/catalog"
	chatuc "github.com/amanahlab/sahabat/internal/usecase/chat"
)

// Wire types mirror the JSON the frontend consumes. Doa items expose judul
// and latin; hadis items expose tema and kata_kunci.

type wireItem struct {
	ID         string   `json:"id"`
	Judul      string   `json:"judul,omitempty"`
	Tema       string   `json:"tema,omitempty"`
	Arti       string   `json:"arti"`
	Latin      string   `json:"latin,omitempty"`
	KataKunci  []string `json:"kata_kunci,omitempty"`
	SourceType string   `json:"source_type"`
}

type wireResult struct {
	Score float64  `json:"score"`
	Data  wireItem `json:"data"`
}

type wireSummary struct {
	Total      int `json:"total"`
	DoaCount   int `json:"doa_count"`
	HadisCount int `json:"hadis_count"`
	Showing    int `json:"showing"`
}

type wireChatResponse struct {
	Status      string       `json:"status"`
	Message     string       `json:"message"`
	Data        []wireResult `json:"data,omitempty"`
	Summary     *wireSummary `json:"summary,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Examples    []string     `json:"examples,omitempty"`
}

type wireBrowseResponse struct {
	Status   string       `json:"status"`
	Category string       `json:"category"`
	Total    int          `json:"total"`
	Data     []wireResult `json:"data"`
}

type wireSuggestResponse struct {
	Status     string `json:"status"`
	Categories struct {
		DoaPopuler   []string `json:"doa_populer"`
		HadisPopuler []string `json:"hadis_populer"`
	} `json:"categories"`
	QuickSearches []string `json:"quick_searches"`
}

type wireHealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	DataStats struct {
		DoaCount   int      `json:"doa_count"`
		HadisCount int      `json:"hadis_count"`
		Intents    []string `json:"intents"`
	} `json:"data_stats"`
	Features struct {
		MaxResultsPerQuery int  `json:"max_results_per_query"`
		OfflineSafe        bool `json:"offline_safe"`
		TimeoutSeconds     int  `json:"timeout_seconds"`
	} `json:"features"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func itemToWire(item domain.Item) wireItem {
	w := wireItem{
		ID:         item.ID,
		Arti:       item.Meaning,
		SourceType: string(item.Source),
	}
	switch item.Source {
	case domain.SourceDoa:
		w.Judul = item.Title
		w.Latin = item.Latin
	case domain.SourceHadis:
		w.Tema = item.Title
		w.KataKunci = item.Keywords
	}
	return w
}

func resultsToWire(results []domain.ScoredResult) []wireResult {
	wire := make([]wireResult, len(results))
	for i, r := range results {
		wire[i] = wireResult{Score: r.Score, Data: itemToWire(r.Item)}
	}
	return wire
}

func chatToWire(resp chatuc.Response) wireChatResponse {
	wire := wireChatResponse{
		Status:      string(resp.Status),
		Message:     resp.Message,
		Suggestions: resp.Suggestions,
		Examples:    resp.Examples,
	}
	if len(resp.Results) > 0 {
		wire.Data = resultsToWire(resp.Results)
	}
	if resp.Summary != nil {
		wire.Summary = &wireSummary{
			Total:      resp.Summary.Total,
			DoaCount:   resp.Summary.DoaCount,
			HadisCount: resp.Summary.HadisCount,
			Showing:    resp.Summary.Showing,
		}
	}
	return wire
}

func suggestionsToWire(s cataloguc.Suggestions) wireSuggestResponse {
	var wire wireSuggestResponse
	wire.Status = "OK"
	wire.Categories.DoaPopuler = s.DoaPopular
	wire.Categories.HadisPopuler = s.HadisPopular
	wire.QuickSearches = s.QuickSearches
	return wire
}
