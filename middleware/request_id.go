package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpnet/chirpnet/utils"
)

// RequestID assigns a v4 UUID to every request, exposes it in the
// X-Request-ID response header, and makes it available to the access log.
// An inbound X-Request-ID is honored so callers can correlate.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(utils.RequestIDKey, rid)
		ctx.Header("X-Request-ID", rid)
		ctx.Next()
	}
}
