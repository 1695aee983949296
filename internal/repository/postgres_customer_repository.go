package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

const (
	opFetchCustomers       = "fetch customers"
	opFetchCustomerMetrics = "fetch customer metrics"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL.
type PostgresCustomerRepository struct {
	gateway *Gateway
}

// NewPostgresCustomerRepository creates a new PostgreSQL customer repository.
func NewPostgresCustomerRepository(gateway *Gateway) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{gateway: gateway}
}

// List retrieves all customers ordered by name ascending. An empty table is
// a valid empty slice.
func (r *PostgresCustomerRepository) List(ctx context.Context) ([]domain.CustomerField, error) {
	rows, err := r.gateway.Query(ctx, opFetchCustomers, NoCache, `
		SELECT id, name
		FROM customers
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.CustomerField{}
	for rows.Next() {
		var c domain.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, r.gateway.Fail(opFetchCustomers, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, r.gateway.Fail(opFetchCustomers, err)
	}

	return customers, nil
}

// FilteredWithTotals retrieves matching customers with per-customer invoice
// aggregates. The LEFT JOIN keeps customers with no invoices, whose totals
// COALESCE to zero.
func (r *PostgresCustomerRepository) FilteredWithTotals(ctx context.Context, pattern string) ([]domain.CustomerTotals, error) {
	rows, err := r.gateway.Query(ctx, opFetchCustomerMetrics, NoCache, `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE $1 ESCAPE '\'
			OR customers.email ILIKE $1 ESCAPE '\'
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
	`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []domain.CustomerTotals{}
	for rows.Next() {
		var t domain.CustomerTotals
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Email, &t.ImageURL,
			&t.TotalInvoices, &t.PendingCents, &t.PaidCents,
		); err != nil {
			return nil, r.gateway.Fail(opFetchCustomerMetrics, err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.gateway.Fail(opFetchCustomerMetrics, err)
	}

	return totals, nil
}
