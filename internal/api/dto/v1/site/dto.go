package site

import "github.com/scoutclear/scout/internal/brand"

// SiteResponse is the brand configuration plus links derived from it
type SiteResponse struct {
	Brand   brand.Brand `json:"brand"`
	TelHref string      `json:"telHref"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}
