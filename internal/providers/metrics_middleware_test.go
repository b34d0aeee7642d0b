package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mwTestMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
}

func (m *mwTestMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mwTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mwTestMetrics) IncCacheHits()                                    {}
func (m *mwTestMetrics) IncCacheMisses()                                  {}
func (m *mwTestMetrics) IncSubmissions(_ string, _ bool)                  {}
func (m *mwTestMetrics) IncResets(_ string)                               {}
func (m *mwTestMetrics) ObserveResetDuration(_ time.Duration)             {}
func (m *mwTestMetrics) SetLeaderboardPlayers(_ string, _ int64)          {}

type mwTestLogger struct {
	warns int
}

func (m *mwTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *mwTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  { m.warns++ }
func (m *mwTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *mwTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *mwTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *mwTestLogger) Close()                                        {}

func TestMetricsMiddleware_CapturesStatusAndEndpoint(t *testing.T) {
	metrics := &mwTestMetrics{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	mw := MetricsMiddleware(metrics, &mwTestLogger{}, handler)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, "/leaderboard", metrics.requestEndpoint)
	assert.Equal(t, http.StatusCreated, metrics.requestStatus)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsMiddleware_DefaultStatus200(t *testing.T) {
	metrics := &mwTestMetrics{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mw := MetricsMiddleware(metrics, &mwTestLogger{}, handler)

	req := httptest.NewRequest(http.MethodGet, "/rank", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, metrics.requestStatus)
}

func TestMetricsMiddleware_LogsFailedRequests(t *testing.T) {
	logger := &mwTestLogger{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	mw := MetricsMiddleware(&mwTestMetrics{}, logger, handler)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, 1, logger.warns)
}

func TestMetricsMiddleware_SuccessNotLogged(t *testing.T) {
	logger := &mwTestLogger{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	mw := MetricsMiddleware(&mwTestMetrics{}, logger, handler)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, 0, logger.warns)
}

func TestStatusWriter_WriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, sw.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
