package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/scoutclear/scout/internal/api/constants"
	"github.com/scoutclear/scout/internal/api/dto/common"
	"github.com/scoutclear/scout/internal/api/dto/v1/contact"
	"github.com/scoutclear/scout/internal/api/validation"
	"github.com/scoutclear/scout/internal/config"
	"github.com/scoutclear/scout/internal/inquiry"
	"github.com/scoutclear/scout/internal/mail"
	"github.com/scoutclear/scout/internal/utils"
)

type ContactHandler struct {
	sender    mail.Sender
	mail      config.Mail
	brandName string
	validate  *validator.Validate
}

func NewContactHandler(sender mail.Sender, cfg config.Mail, brandName string) *ContactHandler {
	return &ContactHandler{
		sender:    sender,
		mail:      cfg,
		brandName: brandName,
		validate:  newContactValidator(),
	}
}

func newContactValidator() *validator.Validate {
	v := validation.New()
	contact.RegisterValidation(v)
	return v
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, errors.New("contact data not found in context"), http.StatusInternalServerError, common.MsgSendFailed, nil)
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("invalid contact data format"), http.StatusInternalServerError, common.MsgSendFailed, nil)
		return
	}

	logger := utils.Logger(c)

	// Bots get the same answer as a real delivery
	if req.IsSpam() {
		logger.Info("Honeypot filled, dropping submission from %s", utils.GetRealIP(c))
		utils.HandleOK(c)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Debug("Contact submission missing fields: %v", validation.Fields(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.MsgMissingFields, nil))
		return
	}

	clean := inquiry.Sanitize(req.Submission())

	if !h.mail.Configured() {
		utils.HandleAPIError(c, errors.New("mail configuration incomplete"), http.StatusInternalServerError, h.mail.MissingMessage(), nil)
		return
	}

	msg, err := inquiry.Compose(clean, inquiry.Envelope{
		From:  h.mail.FromAddress,
		To:    h.mail.ToAddress,
		Brand: h.brandName,
	})
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgSendFailed, nil)
		return
	}

	id, err := h.sender.Send(c.Request.Context(), msg)
	if err != nil {
		logger.Error("%s ERROR: %v", strings.ToUpper(h.sender.Name()), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(h.sender.Name()+" failed", providerDetails(err)))
		return
	}

	logger.Info("Contact email sent via %s, id=%s", h.sender.Name(), id)
	utils.HandleOK(c)
}

// providerDetails returns what the provider reported, without wrapping context
func providerDetails(err error) interface{} {
	var pe *mail.ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	return err.Error()
}

// Preflight answers cross-origin preflight requests
func (h *ContactHandler) Preflight(c *gin.Context) {
	utils.HandleNoContent(c)
}

// MethodNotAllowed answers every method other than POST and OPTIONS
func (h *ContactHandler) MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.MsgMethodNotAllowed, nil))
}
