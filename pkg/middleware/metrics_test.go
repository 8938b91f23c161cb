package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newMetricsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestMetricsLabelRouteTemplate(t *testing.T) {
	r := newMetricsRouter()
	routed := httpRequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "204")
	raw := httpRequestsTotal.WithLabelValues("/items/7", http.MethodGet, "204")
	before, rawBefore := promtest.ToFloat64(routed), promtest.ToFloat64(raw)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/items/7"))
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/items/8"))

	assert.Equal(t, before+2, promtest.ToFloat64(routed))
	assert.Equal(t, rawBefore, promtest.ToFloat64(raw), "raw paths must not become label values")
}

func TestMetricsLabelUnmatchedRoutes(t *testing.T) {
	r := newMetricsRouter()
	unmatched := httpRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
	before := promtest.ToFloat64(unmatched)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/nowhere"))

	assert.Equal(t, before+1, promtest.ToFloat64(unmatched))
}
