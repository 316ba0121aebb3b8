package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long completed keys are replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

type idempotencyRecord struct {
	inFlight   bool
	statusCode int
	body       []byte
	expiresAt  time.Time
}

// IdempotencyStore keeps completed responses in memory so a repeated
// checkout trigger with the same key replays the first result instead of
// posting the transaction twice. The terminal is a single session; there
// is nothing to persist across restarts.
type IdempotencyStore struct {
	mu      sync.Mutex
	records map[string]*idempotencyRecord
}

// NewIdempotencyStore creates an empty store.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{records: make(map[string]*idempotencyRecord)}
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency middleware prevents duplicate submissions using idempotency keys
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			// No idempotency key provided, proceed normally
			c.Next()
			return
		}

		now := time.Now()

		store.mu.Lock()
		record, exists := store.records[key]
		if exists && now.Before(record.expiresAt) {
			if record.inFlight {
				store.mu.Unlock()
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"success": false,
					"message": "Request with this idempotency key is still being processed",
				})
				return
			}
			statusCode, body := record.statusCode, record.body
			store.mu.Unlock()
			c.Data(statusCode, "application/json", body)
			c.Abort()
			return
		}
		store.records[key] = &idempotencyRecord{inFlight: true, expiresAt: now.Add(IdempotencyKeyTTL)}
		store.mu.Unlock()

		writer := responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		store.mu.Lock()
		store.records[key] = &idempotencyRecord{
			statusCode: c.Writer.Status(),
			body:       writer.body.Bytes(),
			expiresAt:  now.Add(IdempotencyKeyTTL),
		}
		// Drop anything expired while we are here
		for k, r := range store.records {
			if now.After(r.expiresAt) {
				delete(store.records, k)
			}
		}
		store.mu.Unlock()
	}
}
