package middleware

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (f *fakeRecorder) RecordRequest(_ context.Context, method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, recordedRequest{method, route, status})
}

func TestRequestMetrics(t *testing.T) {
	rec := &fakeRecorder{}
	r := gin.New()
	r.Use(RequestMetrics(rec))
	r.GET("/invoices/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	perform(r, http.MethodGet, "/invoices/abc", "", nil)
	perform(r, http.MethodGet, "/nowhere", "", nil)

	require.Len(t, rec.seen, 2)
	assert.Equal(t, recordedRequest{"GET", "/invoices/:id", http.StatusNotFound}, rec.seen[0])
	assert.Equal(t, "unmatched", rec.seen[1].route)
}

func TestRequestMetrics_NilRecorder(t *testing.T) {
	r := gin.New()
	r.Use(RequestMetrics(nil), Profiling(false))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/x", "", nil).Code)
}

func TestProfiling_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Profiling(true))
	r.GET("/invoices/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/invoices/1", "", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/health", "", nil).Code)
}
