package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

// CustomerRepository defines the customer read operations. This layer never
// mutates customer rows.
type CustomerRepository interface {
	// List retrieves all customers ordered by name.
	List(ctx context.Context) ([]domain.CustomerField, error)

	// FilteredWithTotals retrieves customers whose name or email matches
	// the pattern, each with aggregated invoice count and pending/paid
	// totals in cents.
	FilteredWithTotals(ctx context.Context, pattern string) ([]domain.CustomerTotals, error)
}
