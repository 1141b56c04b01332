package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/api/handlers"
	"github.com/scoutclear/scout/internal/api/middleware"
	"github.com/scoutclear/scout/internal/logging"
)

// SetupContactRoutes configures the contact form endpoint
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware, logger *logging.Logger) {
	router.POST("/contact",
		middleware.Recovery(logger, common.MsgSendFailed),
		m.Validation.BindContactRequest(),
		contact.Submit,
	)
	router.OPTIONS("/contact", contact.Preflight)
	router.Match([]string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}, "/contact", contact.MethodNotAllowed)
}
