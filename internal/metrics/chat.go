package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ChatQueriesTotal counts chat queries by response status (OK/ASK/ERROR).
	ChatQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sahabat",
			Name:      "chat_queries_total",
			Help:      "Total chat queries by response status",
		},
		[]string{"status"},
	)

	// IntentMatchesTotal counts detected intents by rule name.
	IntentMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sahabat",
			Name:      "intent_matches_total",
			Help:      "Total detected intents by rule name",
		},
		[]string{"intent"},
	)

	// TimezoneFallbacksTotal counts timezone lookups that fell back to the
	// default zone.
	TimezoneFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sahabat",
			Name:      "timezone_fallbacks_total",
			Help:      "Total timezone lookups that fell back to the default zone",
		},
	)
)

// RegisterChatMetrics registers the chat metrics explicitly (no init side
// effects, so tests can opt in once via TestMain).
func RegisterChatMetrics() {
	prometheus.MustRegister(ChatQueriesTotal)
	prometheus.MustRegister(IntentMatchesTotal)
	prometheus.MustRegister(TimezoneFallbacksTotal)
}
