package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finvoice/dashboard-api/internal/model"
	"github.com/finvoice/dashboard-api/internal/service"
)

// InvoiceHandler exposes the invoice read catalog and mutation operations
type InvoiceHandler struct {
	service service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// List handles GET /v1/invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, model.ErrorDetail{Field: "page", Message: "page must be an integer"})
		return
	}

	invoices, err := h.service.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, invoices)
}

// Pages handles GET /v1/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	totalPages, err := h.service.InvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, model.PagesResponse{TotalPages: totalPages})
}

// GetByID handles GET /v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	form, err := h.service.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	if form == nil {
		respondNotFound(c, ErrResourceNotFound)
		return
	}
	respondOK(c, form)
}

// Create handles POST /v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req model.InvoiceMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	result, err := h.service.CreateInvoice(c.Request.Context(), req.CustomerID, req.Amount, req.Status)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondCreated(c, model.MutationResponse{Message: result.Message, Effects: result.Effects})
}

// Update handles PUT /v1/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req model.InvoiceMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	result, err := h.service.UpdateInvoice(c.Request.Context(), c.Param("id"), req.CustomerID, req.Amount, req.Status)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, model.MutationResponse{Message: result.Message, Effects: result.Effects})
}

// Delete handles DELETE /v1/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	result, err := h.service.DeleteInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}
	respondOK(c, model.MutationResponse{Message: result.Message, Effects: result.Effects})
}
