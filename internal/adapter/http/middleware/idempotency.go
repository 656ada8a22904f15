package middleware

import (
	"bytes"
	"context"
	"time"

	redisStore "safe-wallet-service/internal/adapter/storage/redis"
	"safe-wallet-service/pkg/apperror"
	"safe-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 128
	// inFlightTTL bounds how long a crashed request can hold its key.
	inFlightTTL = 10 * time.Minute
)

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored 2xx response for a repeated
// Idempotency-Key instead of running the handler again. Requests without
// the header pass through. Redis failures let the request through.
func Idempotency(store *redisStore.IdempotencyStore, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			response.Error(c, apperror.Validation("Idempotency-Key must be at most 128 characters"))
			c.Abort()
			return
		}

		scoped := identity(c) + ":" + c.FullPath() + ":" + key
		ctx := c.Request.Context()

		cached, err := store.Get(ctx, scoped)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup failed, processing request")
			c.Next()
			return
		}
		if cached != nil {
			replay(c, cached)
			return
		}

		acquired, err := store.Acquire(ctx, scoped, inFlightTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lock failed, processing request")
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, apperror.ErrIdempotencyConflict())
			c.Abort()
			return
		}

		// A request holding the key may have stored its response and
		// released the lock between our lookup and Acquire.
		cached, err = store.Get(ctx, scoped)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup after lock failed, processing request")
		}
		if cached != nil {
			if err := store.Release(context.WithoutCancel(ctx), scoped); err != nil {
				log.Warn().Err(err).Msg("failed to release idempotency key")
			}
			replay(c, cached)
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// The request context may already be cancelled here.
		bg := context.WithoutCancel(ctx)
		if status := rec.Status(); status >= 200 && status < 300 {
			err := store.Set(bg, scoped, redisStore.CachedResponse{
				Status:      status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}, ttl)
			if err != nil {
				log.Warn().Err(err).Msg("failed to store idempotent response")
			}
		}
		if err := store.Release(bg, scoped); err != nil {
			log.Warn().Err(err).Msg("failed to release idempotency key")
		}
	}
}

func replay(c *gin.Context, cached *redisStore.CachedResponse) {
	c.Header(HeaderReplayed, "true")
	c.Data(cached.Status, cached.ContentType, cached.Body)
	c.Abort()
}
