package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Game API metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "milestone",
			Subsystem: "game_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "milestone",
			Subsystem: "game_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	GamesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "milestone",
			Subsystem: "game_api",
			Name:      "games_created_total",
			Help:      "Total games minted",
		},
	)

	AttemptsStartedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "milestone",
			Subsystem: "game_api",
			Name:      "attempts_started_total",
			Help:      "Total attempts started",
		},
		[]string{"source"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "milestone",
			Subsystem: "game_api",
			Name:      "submissions_total",
			Help:      "Total attempt submissions by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, durationSeconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordGameCreated counts a new game and its first attempt.
func RecordGameCreated() {
	GamesCreatedTotal.Inc()
	AttemptsStartedTotal.WithLabelValues("new").Inc()
}

// RecordAttemptStarted counts an attempt started from a shared slug.
func RecordAttemptStarted() {
	AttemptsStartedTotal.WithLabelValues("shared").Inc()
}

// RecordSubmission counts a submission outcome: correct, incorrect or conflict.
func RecordSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}
