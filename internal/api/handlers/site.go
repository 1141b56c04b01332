package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/scoutclear/scout/internal/api/dto/v1/site"
	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/utils"
)

// SiteHandler serves the brand configuration the static site reads
type SiteHandler struct {
	brand brand.Brand
}

func NewSiteHandler(b brand.Brand) *SiteHandler {
	return &SiteHandler{brand: b}
}

func (h *SiteHandler) Get(c *gin.Context) {
	utils.HandleSuccess(c, site.SiteResponse{
		Brand:   h.brand,
		TelHref: brand.TelHref(h.brand.Phone),
	})
}
