package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Content drafts by outcome
	ContentDraftCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_drafts_total",
			Help: "Total number of content draft attempts",
		},
		[]string{"status"}, // status: success, failed
	)

	// Image drafts by outcome
	ImageDraftCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_drafts_total",
			Help: "Total number of image draft attempts",
		},
		[]string{"status"},
	)

	// Campaign submissions by outcome
	CampaignSubmitCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_submissions_total",
			Help: "Total number of campaign submissions",
		},
		[]string{"status"},
	)

	// External API call latency (milliseconds)
	ExternalCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_call_latency_ms",
			Help:    "External API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"endpoint", "status"},
	)
)

func IncrementContentDraft(status string) {
	ContentDraftCount.WithLabelValues(status).Inc()
}

func IncrementImageDraft(status string) {
	ImageDraftCount.WithLabelValues(status).Inc()
}

func IncrementCampaignSubmit(status string) {
	CampaignSubmitCount.WithLabelValues(status).Inc()
}

func RecordExternalCallLatency(endpoint, status string, duration time.Duration) {
	ExternalCallLatency.WithLabelValues(endpoint, status).Observe(float64(duration.Milliseconds()))
}
