package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(calls *atomic.Int32) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(NewIdempotencyStore()))
	router.POST("/checkout", func(c *gin.Context) {
		n := calls.Add(1)
		c.JSON(http.StatusCreated, gin.H{"attempt": n})
	})
	return router
}

func TestIdempotency_ReplaysCompletedResponse(t *testing.T) {
	var calls atomic.Int32
	router := newIdempotencyRouter(&calls)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(second, req)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIdempotency_DistinctKeysRunIndependently(t *testing.T) {
	var calls atomic.Int32
	router := newIdempotencyRouter(&calls)

	for _, key := range []string{"key-a", "key-b"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	var calls atomic.Int32
	router := newIdempotencyRouter(&calls)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_IgnoresGET(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls atomic.Int32
	router := gin.New()
	router.Use(Idempotency(NewIdempotencyStore()))
	router.GET("/status", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, int32(2), calls.Load())
}
