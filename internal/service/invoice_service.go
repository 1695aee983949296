package service

import (
	"context"
	"time"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/currency"
	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/pagination"
	"github.com/finvoice/dashboard-api/internal/repository"
	"github.com/finvoice/dashboard-api/internal/search"
	"github.com/finvoice/dashboard-api/internal/timeout"
	"github.com/finvoice/dashboard-api/internal/validation"
)

// invoicesPath is the list view the presentation tier caches; every invoice
// mutation invalidates it.
const invoicesPath = "/dashboard/invoices"

// InvoiceService defines the invoice read catalog and the mutation handlers.
type InvoiceService interface {
	// FilteredInvoices returns one page of invoices matching the search
	// text. Requesting a page past the last available one fails with a
	// NotFoundError.
	FilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error)

	// InvoicePages returns the total page count for the search text.
	InvoicePages(ctx context.Context, query string) (int, error)

	// InvoiceByID returns the edit-form view of one invoice with the
	// amount as a major-unit number, or nil when the invoice does not
	// exist. The lookup is deadline-bounded.
	InvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error)

	// CreateInvoice validates the raw fields, persists a new invoice
	// dated today, and returns the post-mutation effects.
	CreateInvoice(ctx context.Context, customerID, amount, status string) (domain.MutationResult, error)

	// UpdateInvoice validates the raw fields and replaces customer,
	// amount and status of the identified invoice.
	UpdateInvoice(ctx context.Context, id, customerID, amount, status string) (domain.MutationResult, error)

	// DeleteInvoice removes the identified invoice.
	DeleteInvoice(ctx context.Context, id string) (domain.MutationResult, error)
}

// InvoiceServiceImpl implements InvoiceService.
type InvoiceServiceImpl struct {
	repo         repository.InvoiceRepository
	pipeline     *validation.InvoicePipeline
	pageSize     int
	queryTimeout time.Duration
	today        func() domain.DateOnly
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository, pageSize int, queryTimeout time.Duration) *InvoiceServiceImpl {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &InvoiceServiceImpl{
		repo:         repo,
		pipeline:     validation.NewInvoicePipeline(),
		pageSize:     pageSize,
		queryTimeout: queryTimeout,
		today:        domain.Today,
	}
}

// FilteredInvoices returns one page of matching invoices, newest first.
func (s *InvoiceServiceImpl) FilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error) {
	window := pagination.NewPage(page, s.pageSize)
	pattern := search.ContainsPattern(query)

	rows, err := s.repo.Filtered(ctx, pattern, window)
	if err != nil {
		return nil, err
	}
	// An empty first page is a valid empty listing; an empty later page
	// means the caller walked past the end.
	if len(rows) == 0 && window.Number > 1 {
		return nil, apperr.NewNotFound("invoices page")
	}
	return rows, nil
}

// InvoicePages returns the total page count for the search text.
func (s *InvoiceServiceImpl) InvoicePages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, search.ContainsPattern(query))
	if err != nil {
		return 0, err
	}
	return pagination.TotalPages(count, s.pageSize), nil
}

// InvoiceByID returns the edit-form view of one invoice. This is the one
// read path that exposes the amount as a major-unit number instead of a
// formatted string; the form consumer feeds it back into a numeric input.
func (s *InvoiceServiceImpl) InvoiceByID(ctx context.Context, id string) (*domain.InvoiceForm, error) {
	invoice, err := timeout.Within(ctx, s.queryTimeout, "fetch invoice", func(ctx context.Context) (*domain.Invoice, error) {
		return s.repo.ByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     currency.ToMajor(invoice.AmountCents),
		Status:     invoice.Status,
	}, nil
}

// CreateInvoice validates, converts the amount to cents, and inserts a new
// invoice dated today.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, customerID, amount, status string) (domain.MutationResult, error) {
	params, err := s.pipeline.ParseInvoice(customerID, amount, status)
	if err != nil {
		return domain.MutationResult{}, err
	}

	invoice := domain.Invoice{
		CustomerID:  params.CustomerID,
		AmountCents: currency.ToCents(params.AmountMajor),
		Status:      params.Status,
		Date:        s.today(),
	}
	if err := s.repo.Insert(ctx, invoice); err != nil {
		return domain.MutationResult{}, err
	}

	return domain.MutationResult{
		Message: "Created Invoice.",
		Effects: []domain.Effect{
			domain.RevalidatePath(invoicesPath),
			domain.RedirectTo(invoicesPath),
		},
	}, nil
}

// UpdateInvoice validates and fully replaces customer, amount and status of
// the identified invoice.
func (s *InvoiceServiceImpl) UpdateInvoice(ctx context.Context, id, customerID, amount, status string) (domain.MutationResult, error) {
	params, err := s.pipeline.ParseInvoice(customerID, amount, status)
	if err != nil {
		return domain.MutationResult{}, err
	}

	invoice := domain.Invoice{
		ID:          id,
		CustomerID:  params.CustomerID,
		AmountCents: currency.ToCents(params.AmountMajor),
		Status:      params.Status,
	}
	if err := s.repo.Update(ctx, invoice); err != nil {
		return domain.MutationResult{}, err
	}

	return domain.MutationResult{
		Message: "Updated Invoice.",
		Effects: []domain.Effect{
			domain.RevalidatePath(invoicesPath),
			domain.RedirectTo(invoicesPath),
		},
	}, nil
}

// DeleteInvoice removes the identified invoice and signals the list view to
// refresh. No navigation effect: the caller is already on the list.
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, id string) (domain.MutationResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.MutationResult{}, err
	}

	return domain.MutationResult{
		Message: "Deleted Invoice.",
		Effects: []domain.Effect{
			domain.RevalidatePath(invoicesPath),
		},
	}, nil
}
