package v1

import (
	"net/http"

	"fluxcapital-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	site domain.SiteConfig
}

// NewSiteHandler registers the read-only site-configuration route consumed
// by the frontend for navigation, contact details, and service listings.
func NewSiteHandler(api *gin.RouterGroup, site domain.SiteConfig) {
	handler := &SiteHandler{site: site}

	api.GET("/site", handler.GetSiteConfig)
}

// GetSiteConfig godoc
// @Summary      Site Configuration
// @Description  Static site-wide configuration: contact details, navigation, services.
// @Tags         site
// @Produce      json
// @Success      200  {object}  domain.SiteConfig
// @Router       /site [get]
func (h *SiteHandler) GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.site)
}
