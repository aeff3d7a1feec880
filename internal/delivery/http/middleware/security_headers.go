package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the headers that make sense for a JSON
// API. HSTS is only sent in production, where TLS terminates in front of us.
func SecurityHeadersMiddleware(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if production {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Responses are JSON only. The swagger UI needs its own assets.
		if c.FullPath() != "/v1/swagger/*any" {
			c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}

		// Contact responses must never be replayed from a cache
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}
