package domain

// CardTotals is the raw single-round-trip dashboard aggregate: entity counts
// plus paid/pending sums in cents. Missing aggregates are zero.
type CardTotals struct {
	NumberOfInvoices  int
	NumberOfCustomers int
	PaidCents         int64
	PendingCents      int64
}

// CardData is the display view of CardTotals with the sums rendered as
// currency strings.
type CardData struct {
	NumberOfCustomers    int    `json:"number_of_customers"`
	NumberOfInvoices     int    `json:"number_of_invoices"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
