package repository

import (
	"context"

	"github.com/finvoice/dashboard-api/internal/domain"
)

const opFetchRevenue = "fetch revenue"

// PostgresRevenueRepository implements RevenueRepository using PostgreSQL.
type PostgresRevenueRepository struct {
	gateway *Gateway
}

// NewPostgresRevenueRepository creates a new PostgreSQL revenue repository.
func NewPostgresRevenueRepository(gateway *Gateway) *PostgresRevenueRepository {
	return &PostgresRevenueRepository{gateway: gateway}
}

// All retrieves every revenue row, unmodified, in storage order.
func (r *PostgresRevenueRepository) All(ctx context.Context) ([]domain.RevenuePoint, error) {
	rows, err := r.gateway.Query(ctx, opFetchRevenue, NoCache, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []domain.RevenuePoint{}
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Month, &p.Revenue); err != nil {
			return nil, r.gateway.Fail(opFetchRevenue, err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.gateway.Fail(opFetchRevenue, err)
	}

	return points, nil
}
