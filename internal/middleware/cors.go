package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"approvals/internal/config"
)

// CORS answers cross-origin requests for the configured origins. Credentials
// are only allowed when the origin list is explicit.
func CORS(cfg *config.Config) gin.HandlerFunc {
	wildcard := cfg.AllowsAnyOrigin()

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && cfg.IsOriginAllowed(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			h.Set("Access-Control-Expose-Headers", "X-Request-ID, X-Total-Count")
			h.Set("Access-Control-Max-Age", "86400")
			if !wildcard {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
