package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/domain"
)

const validCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

func TestParseInvoiceValidInput(t *testing.T) {
	p := NewInvoicePipeline()

	params, err := p.ParseInvoice(validCustomerID, "49.99", "paid")
	require.NoError(t, err)

	assert.Equal(t, validCustomerID, params.CustomerID)
	assert.InDelta(t, 49.99, params.AmountMajor, 1e-9)
	assert.Equal(t, domain.StatusPaid, params.Status)
}

func TestParseInvoiceDefaultsStatusToPending(t *testing.T) {
	p := NewInvoicePipeline()

	params, err := p.ParseInvoice(validCustomerID, "100", "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, params.Status)
}

func TestParseInvoiceTrimsWhitespace(t *testing.T) {
	p := NewInvoicePipeline()

	params, err := p.ParseInvoice("  "+validCustomerID+"  ", " 12.50 ", " paid ")
	require.NoError(t, err)
	assert.Equal(t, validCustomerID, params.CustomerID)
	assert.InDelta(t, 12.50, params.AmountMajor, 1e-9)
}

func TestParseInvoiceFieldFailures(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		amount     string
		status     string
		wantField  string
	}{
		{name: "missing customer", customerID: "", amount: "10", wantField: "customer_id"},
		{name: "malformed customer id", customerID: "not-a-uuid", amount: "10", wantField: "customer_id"},
		{name: "missing amount", customerID: validCustomerID, amount: "", wantField: "amount"},
		{name: "non-numeric amount", customerID: validCustomerID, amount: "ten dollars", wantField: "amount"},
		{name: "zero amount", customerID: validCustomerID, amount: "0", wantField: "amount"},
		{name: "negative amount", customerID: validCustomerID, amount: "-5", wantField: "amount"},
		{name: "unknown status", customerID: validCustomerID, amount: "10", status: "overdue", wantField: "status"},
	}

	p := NewInvoicePipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseInvoice(tt.customerID, tt.amount, tt.status)
			require.Error(t, err)

			var verr *apperr.ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestParseInvoiceReportsAllFailedFields(t *testing.T) {
	p := NewInvoicePipeline()

	_, err := p.ParseInvoice("", "not-a-number", "bogus")
	require.Error(t, err)

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "customer_id")
	assert.Contains(t, verr.Fields, "amount")
	assert.Contains(t, verr.Fields, "status")
}
