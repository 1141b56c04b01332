package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins are echoed back
type CORSConfig struct {
	AllowedOrigins []string
	Production     bool
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or ""
// when the header should be left out and the browser left to block the call
func (c CORSConfig) allowOrigin(origin string) string {
	// In development, be permissive and accept any origin
	if !c.Production || len(c.AllowedOrigins) == 0 {
		if origin != "" {
			return origin
		}
		return "*"
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			if origin != "" {
				return origin
			}
			return "*"
		}
		if origin == allowed {
			return origin
		}
	}

	return ""
}

// CORS middleware
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowed := cfg.allowOrigin(origin); allowed != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
		}
		c.Writer.Header().Add("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
