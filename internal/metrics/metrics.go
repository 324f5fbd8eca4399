// Package metrics exposes Prometheus collectors for the scrape and analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news_analytics"

var (
	// FetchAttempts counts HTTP attempts per route kind (proxy or direct).
	FetchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Total number of HTTP fetch attempts",
		},
		[]string{"route", "status"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of successful fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// IngestTotal counts ingestion outcomes (success, skipped, failed).
	IngestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_total",
			Help:      "Total number of URLs processed by the ingestion gate",
		},
		[]string{"outcome"},
	)

	SentimentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentiment_total",
			Help:      "Total number of rows handled by the sentiment processor",
		},
		[]string{"outcome"},
	)

	ReportCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_cache_total",
			Help:      "Report cache lookups by result",
		},
		[]string{"kind", "result"},
	)

	PublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_total",
			Help:      "Total number of article events published",
		},
		[]string{"action", "status"},
	)

	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Total number of scheduled pipeline runs",
		},
		[]string{"status"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of pipeline runs in seconds",
			Buckets:   []float64{1, 10, 30, 60, 300, 600, 1800, 3600},
		},
	)
)

func RecordFetch(route, status string) {
	FetchAttempts.WithLabelValues(route, status).Inc()
}

func RecordFetchDuration(route string, seconds float64) {
	FetchDuration.WithLabelValues(route).Observe(seconds)
}

func RecordIngest(outcome string) {
	IngestTotal.WithLabelValues(outcome).Inc()
}

func RecordSentiment(outcome string) {
	SentimentTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup records a cache hit or miss for a report kind.
func RecordCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ReportCacheTotal.WithLabelValues(kind, result).Inc()
}

func RecordPublish(action, status string) {
	PublishTotal.WithLabelValues(action, status).Inc()
}

func RecordPipelineRun(status string, seconds float64) {
	PipelineRuns.WithLabelValues(status).Inc()
	PipelineDuration.Observe(seconds)
}
