package service

import (
	"context"
	"time"

	"github.com/finvoice/dashboard-api/internal/currency"
	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/repository"
	"github.com/finvoice/dashboard-api/internal/search"
	"github.com/finvoice/dashboard-api/internal/timeout"
)

// CustomerService defines the customer read catalog.
type CustomerService interface {
	// Customers returns all customers ordered by name, deadline-bounded.
	Customers(ctx context.Context) ([]domain.CustomerField, error)

	// FilteredCustomers returns matching customers with their invoice
	// aggregates, pending/paid totals rendered as currency strings.
	FilteredCustomers(ctx context.Context, query string) ([]domain.CustomerMetrics, error)
}

// CustomerServiceImpl implements CustomerService.
type CustomerServiceImpl struct {
	repo         repository.CustomerRepository
	formatter    *currency.Formatter
	queryTimeout time.Duration
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repository.CustomerRepository, formatter *currency.Formatter, queryTimeout time.Duration) *CustomerServiceImpl {
	return &CustomerServiceImpl{repo: repo, formatter: formatter, queryTimeout: queryTimeout}
}

// Customers returns all customers ordered by name. An empty store is a valid
// empty slice.
func (s *CustomerServiceImpl) Customers(ctx context.Context) ([]domain.CustomerField, error) {
	return timeout.Within(ctx, s.queryTimeout, "fetch customers", func(ctx context.Context) ([]domain.CustomerField, error) {
		return s.repo.List(ctx)
	})
}

// FilteredCustomers returns matching customers with aggregated metrics.
func (s *CustomerServiceImpl) FilteredCustomers(ctx context.Context, query string) ([]domain.CustomerMetrics, error) {
	pattern := search.ContainsPattern(query)
	totals, err := timeout.Within(ctx, s.queryTimeout, "fetch customer metrics", func(ctx context.Context) ([]domain.CustomerTotals, error) {
		return s.repo.FilteredWithTotals(ctx, pattern)
	})
	if err != nil {
		return nil, err
	}

	metrics := make([]domain.CustomerMetrics, 0, len(totals))
	for _, t := range totals {
		metrics = append(metrics, domain.CustomerMetrics{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			ImageURL:      t.ImageURL,
			TotalInvoices: t.TotalInvoices,
			TotalPending:  s.formatter.Format(t.PendingCents),
			TotalPaid:     s.formatter.Format(t.PaidCents),
		})
	}
	return metrics, nil
}
