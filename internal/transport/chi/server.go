// Package chi exposes the chat API over a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/amanahlab/sahabat/internal/domain"
	"github.com/amanahlab/sahabat/internal/metrics"
	cataloguc "github.com/amanahlab/sahabat/internal/usecase/catalog"
	chatuc "github.com/amanahlab/sahabat/internal/usecase/chat"
	"github.com/amanahlab/sahabat/internal/version"
)

const serviceName = "Sahabat API"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the usecase services onto HTTP handlers.
type Server struct {
	chat          *chatuc.Service
	catalog       *cataloguc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP API server.
func NewServer(chat *chatuc.Service, catalog *cataloguc.Service, logger *zap.Logger) *Server {
	s := &Server{
		chat:    chat,
		catalog: catalog,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownCategory, http.StatusBadRequest,
			"Kategori tidak valid. Gunakan 'doa' atau 'hadis'."),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/chat", s.handleChat)
	r.Get("/suggest", s.handleSuggest)
	r.Get("/browse/{category}", s.handleBrowse)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
}

type chatRequest struct {
	Query string   `json:"query"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid")
		return
	}

	resp := s.chat.Handle(r.Context(), req.Query, req.Lat, req.Lng)
	metrics.ChatQueriesTotal.WithLabelValues(string(resp.Status)).Inc()

	writeJSON(w, http.StatusOK, chatToWire(resp))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, suggestionsToWire(s.catalog.Suggest()))
}

func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	results, err := s.catalog.Browse(category)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wireBrowseResponse{
		Status:   "OK",
		Category: category,
		Total:    len(results),
		Data:     resultsToWire(results),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.catalog.Stats()

	var resp wireHealthResponse
	resp.Status = "OK"
	resp.Service = serviceName
	resp.Version = version.Version
	resp.DataStats.DoaCount = stats.DoaCount
	resp.DataStats.HadisCount = stats.HadisCount
	resp.DataStats.Intents = stats.Intents
	resp.Features.MaxResultsPerQuery = 3
	resp.Features.OfflineSafe = true
	resp.Features.TimeoutSeconds = 3

	writeJSON(w, http.StatusOK, resp)
}

// handleDomainError walks the error handler chain; unmatched errors become a
// generic 500 ERROR payload.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled domain error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Maaf, terjadi kesalahan server 😔")
}

func sentinelHandler(target error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, target) {
			return false
		}
		writeError(w, status, message)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "ERROR", Message: message})
}
