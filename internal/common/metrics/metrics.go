package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoresComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_scores_computed_total",
			Help: "Total number of match scores computed, by scorer",
		},
		[]string{"scorer"},
	)

	ScoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_score_duration_seconds",
			Help: "Duration of scoring operations in seconds",
		},
		[]string{"scorer"},
	)

	BatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_batch_candidates",
			Help:    "Number of candidates scored per batch",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	AlertsEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_alerts_evaluated_total",
			Help: "Total number of alert-to-job evaluations",
		},
	)

	AlertsMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_alerts_matched_total",
			Help: "Total number of alert-to-job matches",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_cache_hits_total",
			Help: "Total number of cache hits, by entity",
		},
		[]string{"entity"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_cache_misses_total",
			Help: "Total number of cache misses, by entity",
		},
		[]string{"entity"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of alert notifications sent, by channel",
		},
		[]string{"channel"},
	)
)
