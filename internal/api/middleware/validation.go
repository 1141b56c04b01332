package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/scoutclear/scout/internal/api/constants"
	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/api/dto/v1/contact"
	"github.com/scoutclear/scout/internal/utils"
)

// maxContactBody bounds the request body; the longest legal submission is far smaller
const maxContactBody = 64 << 10

// ValidationMiddleware decodes request bodies into DTOs
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// BindContactRequest decodes the contact JSON body. Only a body that is not
// JSON at all is rejected; field checks are left to the handler so the
// honeypot runs before them.
func (m *ValidationMiddleware) BindContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBody))
		if err != nil {
			utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgSendFailed, nil)
			return
		}

		bodyBytes = bytes.TrimSpace(bodyBytes)
		if !json.Valid(bodyBytes) && len(bodyBytes) > 0 {
			utils.HandleAPIError(c, errors.New("request body is not valid JSON"), http.StatusInternalServerError, common.MsgSendFailed, nil)
			return
		}

		// An absent body, null, or any JSON that is not an object has no fields
		if len(bodyBytes) == 0 || bodyBytes[0] != '{' {
			bodyBytes = []byte("{}")
		}

		var req contact.ContactRequest
		if err := binding.JSON.BindBody(bodyBytes, &req); err != nil {
			utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgSendFailed, nil)
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
