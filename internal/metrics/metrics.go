package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	CompletionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompletionsRecorded,
			Help: HelpTextCompletionsRecorded,
		},
		[]string{LabelPuzzle, LabelOutcome},
	)

	CompletionsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompletionsRemoved,
			Help: HelpTextCompletionsRemoved,
		},
		[]string{LabelPuzzle},
	)

	CurrencyAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyAwarded,
			Help: HelpTextCurrencyAwarded,
		},
		[]string{LabelPuzzle},
	)

	StreakRewards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreakRewards,
			Help: HelpTextStreakRewards,
		},
		[]string{LabelPuzzle},
	)

	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDropped,
			Help: HelpTextItemsDropped,
		},
		[]string{LabelItem},
	)

	StorageConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageConflicts,
			Help: HelpTextStorageConflicts,
		},
	)

	Announcements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnnouncements,
			Help: HelpTextAnnouncements,
		},
		[]string{LabelPuzzle, LabelResult},
	)
)
