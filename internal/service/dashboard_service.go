package service

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/currency"
	"github.com/finvoice/dashboard-api/internal/domain"
	"github.com/finvoice/dashboard-api/internal/repository"
)

// DashboardService defines the dashboard read catalog.
type DashboardService interface {
	// Revenue returns the precomputed revenue series as stored.
	Revenue(ctx context.Context) ([]domain.RevenuePoint, error)

	// LatestInvoices returns the most recent invoices with amounts
	// rendered as currency strings. An empty slice is a valid outcome.
	LatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)

	// CardData returns the four summary-card values from one aggregate
	// round trip, monetary sums rendered as currency strings.
	CardData(ctx context.Context) (domain.CardData, error)
}

// DashboardServiceImpl implements DashboardService.
type DashboardServiceImpl struct {
	revenue     repository.RevenueRepository
	invoices    repository.InvoiceRepository
	dashboard   repository.DashboardRepository
	formatter   *currency.Formatter
	latestLimit int
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	revenue repository.RevenueRepository,
	invoices repository.InvoiceRepository,
	dashboard repository.DashboardRepository,
	formatter *currency.Formatter,
	latestLimit int,
) *DashboardServiceImpl {
	if latestLimit < 1 {
		latestLimit = 5
	}
	return &DashboardServiceImpl{
		revenue:     revenue,
		invoices:    invoices,
		dashboard:   dashboard,
		formatter:   formatter,
		latestLimit: latestLimit,
	}
}

// Revenue returns every aggregate row unmodified.
func (s *DashboardServiceImpl) Revenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	return s.revenue.All(ctx)
}

// LatestInvoices returns the newest invoices with formatted amounts.
func (s *DashboardServiceImpl) LatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	rows, err := s.invoices.Latest(ctx, s.latestLimit)
	if err != nil {
		return nil, err
	}

	latest := make([]domain.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, domain.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   s.formatter.Format(row.AmountCents),
		})
	}
	return latest, nil
}

// CardData returns the summary cards with formatted monetary totals.
func (s *DashboardServiceImpl) CardData(ctx context.Context) (domain.CardData, error) {
	totals, err := s.dashboard.CardTotals(ctx)
	if err != nil {
		return domain.CardData{}, err
	}

	return domain.CardData{
		NumberOfCustomers:    totals.NumberOfCustomers,
		NumberOfInvoices:     totals.NumberOfInvoices,
		TotalPaidInvoices:    s.formatter.Format(totals.PaidCents),
		TotalPendingInvoices: s.formatter.Format(totals.PendingCents),
	}, nil
}
