package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

const opFetchCardData = "fetch card data"

// PostgresDashboardRepository implements DashboardRepository using PostgreSQL.
type PostgresDashboardRepository struct {
	gateway *Gateway
}

// NewPostgresDashboardRepository creates a new PostgreSQL dashboard repository.
func NewPostgresDashboardRepository(gateway *Gateway) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{gateway: gateway}
}

// CardTotals computes all four summary aggregates in one statement. Sums
// over empty sets COALESCE to zero so an empty database yields zero cards
// rather than NULL scan failures.
func (r *PostgresDashboardRepository) CardTotals(ctx context.Context) (domain.CardTotals, error) {
	var totals domain.CardTotals
	err := r.gateway.QueryRow(ctx, opFetchCardData, NoCache, `
		SELECT
			(SELECT COUNT(*) FROM invoices) AS invoice_count,
			(SELECT COUNT(*) FROM customers) AS customer_count,
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'paid') AS total_paid,
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = 'pending') AS total_pending
	`).Scan(&totals.NumberOfInvoices, &totals.NumberOfCustomers, &totals.PaidCents, &totals.PendingCents)
	if err != nil {
		return domain.CardTotals{}, r.gateway.Fail(opFetchCardData, err)
	}
	return totals, nil
}
