package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finvoice/dashboard-api/internal/service"
)

// CustomerHandler exposes the customer read catalog
type CustomerHandler struct {
	service service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, customers)
}

// Filtered handles GET /v1/customers/filtered?query=
func (h *CustomerHandler) Filtered(c *gin.Context) {
	metrics, err := h.service.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, metrics)
}
