package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/constants"
	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/logging"
)

// Logger returns the request logger set by the logging middleware, or a no-op logger
func Logger(c *gin.Context) *logging.Logger {
	if v, ok := c.Get(constants.ContextKeyLogger); ok {
		if l, ok := v.(*logging.Logger); ok {
			return l
		}
	}
	return logging.Nop()
}

// HandleAPIError logs err and aborts with a JSON error body. The underlying
// error never reaches the caller; only explicit details do.
func HandleAPIError(c *gin.Context, err error, status int, message string, details interface{}) {
	Logger(c).LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message, details))
}
