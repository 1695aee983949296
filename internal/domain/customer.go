package domain

// Customer is the persisted customer row. This layer never mutates customers.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField is the minimal customer projection used to populate
// selection lists.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerTotals is the raw per-customer aggregate as read from the store:
// invoice count plus pending/paid sums in cents. Computed per query, never
// persisted.
type CustomerTotals struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	PendingCents  int64
	PaidCents     int64
}

// CustomerMetrics is the display view of CustomerTotals with the monetary
// sums rendered as currency strings.
type CustomerMetrics struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
