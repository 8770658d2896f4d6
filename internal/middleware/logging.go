package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"approvals/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging logs each request with a request id, method, path, status,
// latency, client ip and, once authenticated, the principal id. An incoming
// X-Request-ID is reused.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if principal := PrincipalFrom(c); principal != nil {
			fields = append(fields, "principal_id", principal.ID)
		}
		logger.Named("http").Infow("request", fields...)
	}
}
