package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finvoice/dashboard-api/internal/service"
)

// DashboardHandler exposes the dashboard read catalog
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Revenue handles GET /v1/dashboard/revenue
func (h *DashboardHandler) Revenue(c *gin.Context) {
	points, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, points)
}

// LatestInvoices handles GET /v1/dashboard/latest-invoices
func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, latest)
}

// Cards handles GET /v1/dashboard/cards
func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.CardData(c.Request.Context())
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, cards)
}
