package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/handlers"
)

// SetupSiteRoutes exposes the brand configuration to the static site
func SetupSiteRoutes(router *gin.RouterGroup, site *handlers.SiteHandler) {
	router.GET("/site", site.Get)
}
