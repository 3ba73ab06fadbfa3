package httpapi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unimarket-dev/unimarket/pkg/logger"
)

// Cache is a read-through response cache for hot catalog GETs. A nil
// client disables caching entirely.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a response cache with the given TTL
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(r *http.Request) string {
	sum := sha256.Sum256([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return "cache:" + hex.EncodeToString(sum[:])
}

// cacheRecorder buffers the response so successful bodies can be stored
type cacheRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// Middleware serves cached bodies for GET requests and stores fresh 200
// responses. Entries expire by TTL only; writes do not invalidate.
func (c *Cache) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c.client == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r)
		cached, err := c.client.Get(r.Context(), key).Bytes()
		if err == nil && len(cached) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}

		rec := &cacheRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			if err := c.client.Set(r.Context(), key, rec.body.Bytes(), c.ttl).Err(); err != nil {
				logger.Logger.Warn().Err(err).Str("key", key).Msg("Failed to store cached response")
			}
		}
	}
}
