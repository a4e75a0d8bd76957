package ercgateway

import "github.com/gin-gonic/gin"

// securityHeaders sets the same defensive response headers the ATHENA API
// gateway applies to every route, adapted from platform-lib's
// pkg/middleware.SecurityHeadersMiddleware.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}
