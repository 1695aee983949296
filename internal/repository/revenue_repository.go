package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

// RevenueRepository reads the precomputed revenue aggregate relation.
type RevenueRepository interface {
	// All retrieves every revenue row as stored.
	All(ctx context.Context) ([]domain.RevenuePoint, error)
}
