package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/pagination"
)

// Operation categories used in caller-facing error messages.
const (
	opFetchInvoices = "fetch invoices"
	opFetchLatest   = "fetch the latest invoices"
	opFetchInvoice  = "fetch invoice"
	opCountInvoices = "count invoices"
	opCreateInvoice = "create invoice"
	opUpdateInvoice = "update invoice"
	opDeleteInvoice = "delete invoice"
)

// invoiceFilter matches the pattern against every column a user can see in
// the invoices table, numeric and date columns as text. The explicit ESCAPE
// clause pairs with the sanitizer's backslash escaping.
const invoiceFilter = `
	customers.name ILIKE $1 ESCAPE '\'
	OR customers.email ILIKE $1 ESCAPE '\'
	OR invoices.amount::text ILIKE $1 ESCAPE '\'
	OR invoices.date::text ILIKE $1 ESCAPE '\'
	OR invoices.status ILIKE $1 ESCAPE '\'`

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
type PostgresInvoiceRepository struct {
	gateway *Gateway
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository.
func NewPostgresInvoiceRepository(gateway *Gateway) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{gateway: gateway}
}

// Latest retrieves the most recent invoices by date, joined with customer
// identity. An empty result is a valid empty slice, not a failure.
func (r *PostgresInvoiceRepository) Latest(ctx context.Context, limit int) ([]domain.LatestInvoiceRow, error) {
	rows, err := r.gateway.Query(ctx, opFetchLatest, NoCache, `
		SELECT invoices.amount, customers.name, customers.image_url, customers.email, invoices.id
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := []domain.LatestInvoiceRow{}
	for rows.Next() {
		var row domain.LatestInvoiceRow
		if err := rows.Scan(&row.AmountCents, &row.Name, &row.ImageURL, &row.Email, &row.ID); err != nil {
			return nil, r.gateway.Fail(opFetchLatest, err)
		}
		latest = append(latest, row)
	}
	if err := rows.Err(); err != nil {
		return nil, r.gateway.Fail(opFetchLatest, err)
	}

	return latest, nil
}

// Filtered retrieves one page of invoices matching the pattern, newest first.
func (r *PostgresInvoiceRepository) Filtered(ctx context.Context, pattern string, page pagination.Page) ([]domain.InvoiceRow, error) {
	rows, err := r.gateway.Query(ctx, opFetchInvoices, NoCache, `
		SELECT
			invoices.id,
			invoices.customer_id,
			customers.name,
			customers.email,
			customers.image_url,
			invoices.date,
			invoices.amount,
			invoices.status
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceFilter+`
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`, pattern, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []domain.InvoiceRow{}
	for rows.Next() {
		var row domain.InvoiceRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Name, &row.Email, &row.ImageURL,
			&row.Date.Time, &row.AmountCents, &row.Status,
		); err != nil {
			return nil, r.gateway.Fail(opFetchInvoices, err)
		}
		invoices = append(invoices, row)
	}
	if err := rows.Err(); err != nil {
		return nil, r.gateway.Fail(opFetchInvoices, err)
	}

	return invoices, nil
}

// CountFiltered returns the number of invoices matching the pattern.
func (r *PostgresInvoiceRepository) CountFiltered(ctx context.Context, pattern string) (int, error) {
	var count int
	err := r.gateway.QueryRow(ctx, opCountInvoices, NoCache, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceFilter+`
	`, pattern).Scan(&count)
	if err != nil {
		return 0, r.gateway.Fail(opCountInvoices, err)
	}
	return count, nil
}

// ByID retrieves a single invoice. A missing row is (nil, nil), not an error.
func (r *PostgresInvoiceRepository) ByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.gateway.QueryRow(ctx, opFetchInvoice, NoCache, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`, id).Scan(&invoice.ID, &invoice.CustomerID, &invoice.AmountCents, &invoice.Status, &invoice.Date.Time)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.gateway.Fail(opFetchInvoice, err)
	}
	return &invoice, nil
}

// Insert persists a new invoice as a single statement.
func (r *PostgresInvoiceRepository) Insert(ctx context.Context, invoice domain.Invoice) error {
	_, err := r.gateway.Exec(ctx, opCreateInvoice, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
	`, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.Date.String())
	return err
}

// Update replaces customer, amount and status of an existing invoice.
func (r *PostgresInvoiceRepository) Update(ctx context.Context, invoice domain.Invoice) error {
	_, err := r.gateway.Exec(ctx, opUpdateInvoice, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.ID)
	return err
}

// Delete removes an invoice by id. Deleting a missing invoice is reported as
// not found.
func (r *PostgresInvoiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.gateway.Exec(ctx, opDeleteInvoice, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("invoice")
	}
	return nil
}
