package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/common"
)

// HandleOK sends the {"ok":true} body
func HandleOK(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewOKResponse())
}

// HandleSuccess sends a 200 response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleNoContent sends an empty 204
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
