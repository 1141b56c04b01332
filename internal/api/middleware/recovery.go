package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/logging"
	"github.com/scoutclear/scout/internal/utils"
)

// Recovery turns a panic into a 500 with the given client-visible message.
// The panic value is logged, never returned.
func Recovery(logger *logging.Logger, message string) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			utils.GetRealIP(c),
			http.StatusInternalServerError,
			message,
			fmt.Errorf("panic: %v", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(message, nil))
	})
}
