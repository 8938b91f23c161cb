package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"tourcms/pkg/utils"
)

func newTraceRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = c.GetString(utils.TraceIDKey)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestTraceIDReusesValidHeader(t *testing.T) {
	var seen string
	r := newTraceRouter(&seen)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, w.Header().Get(TraceIDHeader))
}

func TestTraceIDReplacesGarbage(t *testing.T) {
	var seen string
	r := newTraceRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "not-a-uuid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(TraceIDHeader))
}
