package model

import "github.com/finvoice/dashboard-api/internal/domain"

// InvoiceMutationRequest carries the raw, untyped form fields for creating
// or updating an invoice. All fields arrive as strings and go through the
// validation pipeline before anything touches the store.
type InvoiceMutationRequest struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// MutationResponse reports a successful mutation together with the
// post-mutation effects the presentation tier should execute.
type MutationResponse struct {
	Message string          `json:"message"`
	Effects []domain.Effect `json:"effects"`
}

// PagesResponse reports the total page count for a filtered invoice listing.
type PagesResponse struct {
	TotalPages int `json:"total_pages"`
}
