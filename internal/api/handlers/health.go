package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/v1/site"
	"github.com/scoutclear/scout/internal/utils"
	"github.com/scoutclear/scout/internal/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, site.HealthResponse{
		OK:      true,
		Version: version.GetVersionString(),
	})
}
