package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/constants"
	"github.com/scoutclear/scout/internal/logging"
	"github.com/scoutclear/scout/internal/utils"
)

// RequestLogger makes logger available to handlers and writes one access line
// per request when request logging is enabled on it
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Set(constants.ContextKeyLogger, logger)

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			GetRequestID(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
