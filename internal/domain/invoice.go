package domain

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether s is one of the known statuses.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is the persisted invoice row. Amount is always integer cents;
// conversion to a major-unit decimal happens only at the read/write boundary.
type Invoice struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	AmountCents int64         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Date        DateOnly      `json:"date"`
}

// InvoiceParams is the typed, constrained result of validating raw mutation
// input. AmountMajor is the major-unit decimal the caller supplied; the
// mutation path converts it to cents before anything is persisted.
type InvoiceParams struct {
	CustomerID  string        `validate:"required,uuid4"`
	AmountMajor float64       `validate:"gt=0"`
	Status      InvoiceStatus `validate:"oneof=pending paid"`
}

// InvoiceRow is a filtered-invoices result row: an invoice joined with the
// identity of its customer. Amount stays in cents; formatting is the
// consumer's concern on this path.
type InvoiceRow struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	ImageURL    string        `json:"image_url"`
	Date        DateOnly      `json:"date"`
	AmountCents int64         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
}

// LatestInvoiceRow is a raw top-N-by-date row as read from the store.
type LatestInvoiceRow struct {
	ID          string
	Name        string
	ImageURL    string
	Email       string
	AmountCents int64
}

// LatestInvoice is the dashboard view of a recent invoice, amount already
// rendered as a currency string.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoiceForm is the edit-form view of a single invoice. Amount is a
// major-unit number (cents divided by 100), deliberately not a formatted
// string: the form consumer needs something it can put back in a numeric
// input.
type InvoiceForm struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}
