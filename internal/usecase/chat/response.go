package chat

import "github.com/amanahlab/sahabat/internal/domain"

// Status classifies a chat response.
type Status string

const (
	// StatusOK carries ranked results.
	StatusOK Status = "OK"
	// StatusAsk carries guidance back to the user, no results.
	StatusAsk Status = "ASK"
	// StatusError reports an unexpected failure. The transport layer emits
	// it; the orchestration itself recovers every input problem into ASK.
	StatusError Status = "ERROR"
)

// Summary reports result counts alongside an OK response.
type Summary struct {
	Total      int
	DoaCount   int
	HadisCount int
	Showing    int
}

// Response is the payload handed to the transport layer.
type Response struct {
	Status      Status
	Message     string
	Results     []domain.ScoredResult // at most maxResults, OK only
	Summary     *Summary
	Suggestions []string
	Examples    []string
}
