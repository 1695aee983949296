package domain

// RevenuePoint is one precomputed (period, amount) aggregate row. Read-only
// to this layer.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
