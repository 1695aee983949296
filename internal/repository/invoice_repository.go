package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/pagination"
)

// InvoiceRepository defines the invoice read and write operations against
// the store. Search patterns arrive pre-sanitized; each write is a single
// statement with no multi-row atomicity beyond what the statement provides.
type InvoiceRepository interface {
	// Latest retrieves the most recent invoices by date, joined with
	// customer identity.
	Latest(ctx context.Context, limit int) ([]domain.LatestInvoiceRow, error)

	// Filtered retrieves one page of invoices whose customer name, email,
	// amount, date or status matches the pattern, newest first.
	Filtered(ctx context.Context, pattern string, page pagination.Page) ([]domain.InvoiceRow, error)

	// CountFiltered returns the number of invoices matching the pattern.
	CountFiltered(ctx context.Context, pattern string) (int, error)

	// ByID retrieves a single invoice, or nil when no row exists.
	ByID(ctx context.Context, id string) (*domain.Invoice, error)

	// Insert persists a new invoice. The ID is assigned by the store.
	Insert(ctx context.Context, invoice domain.Invoice) error

	// Update replaces customer, amount and status of an existing invoice.
	Update(ctx context.Context, invoice domain.Invoice) error

	// Delete removes an invoice by id.
	Delete(ctx context.Context, id string) error
}
