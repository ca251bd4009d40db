package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robmck/fitlife/internal/telemetry/metrics"
)

func TestRequestMetricsMiddleware(t *testing.T) {
	metricsManager, registry := metrics.NewTestManagerAndRegistry()

	handlerFunc := RequestMetrics(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for range [3]struct{}{} {
		rr := httptest.NewRecorder()
		handlerFunc.ServeHTTP(rr, httptest.NewRequest("GET", "/foodlog", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr := httptest.NewRecorder()
	handlerFunc.ServeHTTP(rr, httptest.NewRequest("POST", "/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)

	var requestsFamily *dto.MetricFamily
	for _, mf := range metricFamilies {
		if mf.GetName() == "backend_test_server_request" {
			requestsFamily = mf
			break
		}
	}
	require.NotNil(t, requestsFamily)
	require.Len(t, requestsFamily.GetMetric(), 2)

	countsByLabels := make(map[string]float64)
	for _, m := range requestsFamily.GetMetric() {
		var method, status string
		for _, label := range m.GetLabel() {
			switch label.GetName() {
			case "method":
				method = label.GetValue()
			case "status":
				status = label.GetValue()
			}
		}
		countsByLabels[method+" "+status] = m.GetCounter().GetValue()
	}

	assert.Equal(t, float64(3), countsByLabels["GET 200"])
	assert.Equal(t, float64(1), countsByLabels["POST 404"])
}
