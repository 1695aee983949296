package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

// DashboardRepository reads the summary-card aggregates.
type DashboardRepository interface {
	// CardTotals computes invoice count, customer count and paid/pending
	// sums in a single round trip.
	CardTotals(ctx context.Context) (domain.CardTotals, error)
}
