package providers

import (
	"sld/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncSubmissions(mode string, accepted bool)
	IncResets(outcome string)
	ObserveResetDuration(duration time.Duration)
	SetLeaderboardPlayers(mode string, count int64)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	submissionsTotal   *prometheus.CounterVec
	resetsTotal        *prometheus.CounterVec
	resetDuration      prometheus.Histogram
	leaderboardPlayers *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncSubmissions(mode string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.submissionsTotal.WithLabelValues(mode, result).Inc()
}

func (m *MetricsProvider) IncResets(outcome string) {
	m.resetsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveResetDuration(duration time.Duration) {
	m.resetDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetLeaderboardPlayers(mode string, count int64) {
	m.leaderboardPlayers.WithLabelValues(mode).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sld_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sld_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sld_cache_hits_total",
			Help: "Response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sld_cache_misses_total",
			Help: "Response cache misses",
		}),

		submissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sld_submissions_total",
			Help: "Score submissions by mode and result",
		}, []string{"mode", "result"}),

		resetsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sld_resets_total",
			Help: "Leaderboard reset executions by outcome",
		}, []string{"outcome"}),

		resetDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sld_reset_duration_seconds",
			Help:    "Duration of leaderboard reset executions",
			Buckets: prometheus.DefBuckets,
		}),

		leaderboardPlayers: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sld_leaderboard_players",
			Help: "Raw entry count of the live ranked collection per mode",
		}, []string{"mode"}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(string, int)                 {}
func (n *noopMetrics) ObserveRequestDuration(string, time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                {}
func (n *noopMetrics) IncCacheMisses()                              {}
func (n *noopMetrics) IncSubmissions(string, bool)                  {}
func (n *noopMetrics) IncResets(string)                             {}
func (n *noopMetrics) ObserveResetDuration(time.Duration)           {}
func (n *noopMetrics) SetLeaderboardPlayers(string, int64)          {}
