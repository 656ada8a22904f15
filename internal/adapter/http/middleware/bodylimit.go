package middleware

import (
	"net/http"

	"safe-wallet-service/pkg/apperror"
	"safe-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes caps request bodies; the API only accepts small JSON
// documents.
const DefaultMaxBodyBytes = 64 << 10

// MaxBodySize rejects requests whose declared length exceeds maxBytes and
// caps the reader for the rest, so an undeclared oversized body fails to
// bind.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.ErrPayloadTooLarge())
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
