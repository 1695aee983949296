package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/pagination"
)

const testCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

// stubInvoiceRepo records calls and plays back canned results.
type stubInvoiceRepo struct {
	latestRows   []domain.LatestInvoiceRow
	filteredRows []domain.InvoiceRow
	count        int
	byID         *domain.Invoice
	err          error

	insertCalled  bool
	inserted      domain.Invoice
	updated       domain.Invoice
	deletedID     string
	deleteCalled  bool
	gotPattern    string
	gotPage       pagination.Page
	byIDDelay     time.Duration
	respectingCtx bool
}

func (s *stubInvoiceRepo) Latest(ctx context.Context, limit int) ([]domain.LatestInvoiceRow, error) {
	return s.latestRows, s.err
}

func (s *stubInvoiceRepo) Filtered(ctx context.Context, pattern string, page pagination.Page) ([]domain.InvoiceRow, error) {
	s.gotPattern = pattern
	s.gotPage = page
	return s.filteredRows, s.err
}

func (s *stubInvoiceRepo) CountFiltered(ctx context.Context, pattern string) (int, error) {
	s.gotPattern = pattern
	return s.count, s.err
}

func (s *stubInvoiceRepo) ByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if s.byIDDelay > 0 {
		if s.respectingCtx {
			select {
			case <-time.After(s.byIDDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		} else {
			time.Sleep(s.byIDDelay)
		}
	}
	return s.byID, s.err
}

func (s *stubInvoiceRepo) Insert(ctx context.Context, invoice domain.Invoice) error {
	s.insertCalled = true
	s.inserted = invoice
	return s.err
}

func (s *stubInvoiceRepo) Update(ctx context.Context, invoice domain.Invoice) error {
	s.updated = invoice
	return s.err
}

func (s *stubInvoiceRepo) Delete(ctx context.Context, id string) error {
	s.deleteCalled = true
	s.deletedID = id
	return s.err
}

func newTestInvoiceService(repo *stubInvoiceRepo) *InvoiceServiceImpl {
	svc := NewInvoiceService(repo, 6, 5*time.Second)
	svc.today = func() domain.DateOnly {
		return domain.NewDate(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))
	}
	return svc
}

func TestCreateInvoicePersistsAmountAsCents(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newTestInvoiceService(repo)

	result, err := svc.CreateInvoice(context.Background(), testCustomerID, "49.99", "pending")
	require.NoError(t, err)

	assert.True(t, repo.insertCalled)
	assert.Equal(t, int64(4999), repo.inserted.AmountCents)
	assert.Equal(t, testCustomerID, repo.inserted.CustomerID)
	assert.Equal(t, domain.StatusPending, repo.inserted.Status)
	assert.Equal(t, "2026-08-27", repo.inserted.Date.String())

	assert.Equal(t, "Created Invoice.", result.Message)
	assert.Equal(t, []domain.Effect{
		domain.RevalidatePath("/dashboard/invoices"),
		domain.RedirectTo("/dashboard/invoices"),
	}, result.Effects)
}

func TestCreateInvoiceRejectsInvalidInputBeforeTheStore(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newTestInvoiceService(repo)

	_, err := svc.CreateInvoice(context.Background(), "", "not-a-number", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.False(t, repo.insertCalled, "validation failures must never reach the store")
}

func TestUpdateInvoiceReplacesFieldsByID(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newTestInvoiceService(repo)

	result, err := svc.UpdateInvoice(context.Background(), "inv-1", testCustomerID, "12.50", "paid")
	require.NoError(t, err)

	assert.Equal(t, "inv-1", repo.updated.ID)
	assert.Equal(t, int64(1250), repo.updated.AmountCents)
	assert.Equal(t, domain.StatusPaid, repo.updated.Status)
	assert.Equal(t, "Updated Invoice.", result.Message)
	assert.Contains(t, result.Effects, domain.RedirectTo("/dashboard/invoices"))
}

func TestDeleteInvoiceDeletesAndSignalsInvalidation(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newTestInvoiceService(repo)

	result, err := svc.DeleteInvoice(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.True(t, repo.deleteCalled)
	assert.Equal(t, "inv-1", repo.deletedID)
	assert.Equal(t, "Deleted Invoice.", result.Message)
	assert.Equal(t, []domain.Effect{domain.RevalidatePath("/dashboard/invoices")}, result.Effects)
}

func TestDeleteInvoicePropagatesStoreFailure(t *testing.T) {
	repo := &stubInvoiceRepo{err: apperr.NewDatabase("delete invoice")}
	svc := newTestInvoiceService(repo)

	_, err := svc.DeleteInvoice(context.Background(), "inv-1")
	require.Error(t, err)
	assert.True(t, apperr.IsDatabase(err))
	assert.Equal(t, "failed to delete invoice", err.Error())
}

func TestFilteredInvoicesSanitizesAndPaginates(t *testing.T) {
	repo := &stubInvoiceRepo{filteredRows: []domain.InvoiceRow{{ID: "inv-1"}}}
	svc := newTestInvoiceService(repo)

	rows, err := svc.FilteredInvoices(context.Background(), "50%_off", 3)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	assert.Equal(t, `%50\%\_off%`, repo.gotPattern)
	assert.Equal(t, 3, repo.gotPage.Number)
	assert.Equal(t, 12, repo.gotPage.Offset())
}

func TestFilteredInvoicesClampsPageBelowOne(t *testing.T) {
	repo := &stubInvoiceRepo{filteredRows: []domain.InvoiceRow{}}
	svc := newTestInvoiceService(repo)

	_, err := svc.FilteredInvoices(context.Background(), "", -2)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gotPage.Number)
	assert.Equal(t, 0, repo.gotPage.Offset())
}

func TestFilteredInvoicesPastLastPageIsNotFound(t *testing.T) {
	repo := &stubInvoiceRepo{filteredRows: []domain.InvoiceRow{}}
	svc := newTestInvoiceService(repo)

	// Page 1 empty: a valid empty listing.
	rows, err := svc.FilteredInvoices(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Page 2 empty: the caller walked past the end.
	_, err = svc.FilteredInvoices(context.Background(), "", 2)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestInvoicePages(t *testing.T) {
	repo := &stubInvoiceRepo{count: 7}
	svc := newTestInvoiceService(repo)

	pages, err := svc.InvoicePages(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	repo.count = 0
	pages, err = svc.InvoicePages(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, pages)
}

func TestInvoiceByIDConvertsCentsToMajorUnits(t *testing.T) {
	repo := &stubInvoiceRepo{byID: &domain.Invoice{
		ID:          "inv-1",
		CustomerID:  testCustomerID,
		AmountCents: 4999,
		Status:      domain.StatusPaid,
	}}
	svc := newTestInvoiceService(repo)

	form, err := svc.InvoiceByID(context.Background(), "inv-1")
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.InDelta(t, 49.99, form.Amount, 1e-9)
	assert.Equal(t, domain.StatusPaid, form.Status)
}

func TestInvoiceByIDMissingRowIsEmptyNotError(t *testing.T) {
	repo := &stubInvoiceRepo{byID: nil}
	svc := newTestInvoiceService(repo)

	form, err := svc.InvoiceByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestInvoiceByIDTimesOutOnSlowStore(t *testing.T) {
	repo := &stubInvoiceRepo{byID: &domain.Invoice{ID: "inv-1"}, byIDDelay: time.Second, respectingCtx: true}
	svc := NewInvoiceService(repo, 6, 30*time.Millisecond)

	_, err := svc.InvoiceByID(context.Background(), "inv-1")
	require.Error(t, err)
	assert.True(t, apperr.IsTimeout(err), "expected a timeout, got %v", err)
}
