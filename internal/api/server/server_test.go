package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/trec-sweep/internal/metrics"
	pkgserver "github.com/DjordjeVuckovic/trec-sweep/pkg/server"
	"github.com/stretchr/testify/assert"
)

type staticHealth bool

func (h staticHealth) Healthy(context.Context) bool { return bool(h) }

func newTestServer(t *testing.T, hc pkgserver.HealthChecker) (*Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}, hc).
		SetupMiddlewares(m).
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", m)
	t.Cleanup(s.stop)
	return s, m
}

func serve(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s, _ := newTestServer(t, pkgserver.AllHealthy{staticHealth(true), pkgserver.NewOkHealthChecker()})
		rec := serve(s, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok"`)
	})

	t.Run("unhealthy dependency", func(t *testing.T) {
		s, _ := newTestServer(t, pkgserver.AllHealthy{staticHealth(true), staticHealth(false)})
		rec := serve(s, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, pkgserver.NewOkHealthChecker())

	serve(s, "/health")
	rec := serve(s, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t, pkgserver.NewOkHealthChecker())

	rec := serve(s, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
