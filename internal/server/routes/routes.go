package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/api/middleware"
	"github.com/scoutclear/scout/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	api := router.Group("/api")

	SetupHealthRoutes(router, h.Health)
	SetupSiteRoutes(api, h.Site)
	SetupContactRoutes(api, h.Contact, m, logger)

	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.MsgMethodNotAllowed, nil))
	})
	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, common.NewErrorResponse("Not found", nil))
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cors middleware.CORSConfig, extra ...gin.HandlerFunc) {
	router.HandleMethodNotAllowed = true

	router.Use(middleware.Recovery(logger, common.MsgInternal))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(extra...)
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cors))
}
