// Package validation coerces raw mutation input into typed, constrained
// records. It is pure: no network or storage access happens here, and
// failures come back as a tagged result rather than a panic, so mutation
// handlers can branch on them explicitly.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/finvoice/dashboard-api/internal/apperr"
	"github.com/finvoice/dashboard-api/internal/domain"
)

// User-facing field messages.
const (
	msgCustomerRequired = "please select a customer"
	msgCustomerInvalid  = "customer id must be a valid UUID"
	msgAmountRequired   = "please enter an amount"
	msgAmountNumeric    = "amount must be a number"
	msgAmountPositive   = "please enter an amount greater than $0"
	msgStatusInvalid    = "status must be either 'pending' or 'paid'"
)

// InvoicePipeline validates and coerces invoice mutation input.
type InvoicePipeline struct {
	validate *validator.Validate
}

// NewInvoicePipeline builds a pipeline backed by a shared validator instance.
func NewInvoicePipeline() *InvoicePipeline {
	return &InvoicePipeline{validate: validator.New()}
}

// ParseInvoice coerces the raw string fields into domain.InvoiceParams.
// Amount is parsed as a major-unit decimal, status defaults to pending when
// absent. On failure it returns an *apperr.ValidationError listing every
// field that failed; the params value is only meaningful when err is nil.
func (p *InvoicePipeline) ParseInvoice(customerID, amount, status string) (domain.InvoiceParams, error) {
	fields := make(map[string]string)

	params := domain.InvoiceParams{
		CustomerID: strings.TrimSpace(customerID),
		Status:     domain.InvoiceStatus(strings.TrimSpace(status)),
	}
	if params.Status == "" {
		params.Status = domain.StatusPending
	}

	amount = strings.TrimSpace(amount)
	if amount == "" {
		fields["amount"] = msgAmountRequired
	} else {
		major, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			fields["amount"] = msgAmountNumeric
		} else {
			params.AmountMajor = major
		}
	}

	if err := p.validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.InvoiceParams{}, err
		}
		for _, fe := range verrs {
			field, msg := fieldMessage(fe)
			// Coercion failures reported above take precedence.
			if _, seen := fields[field]; !seen {
				fields[field] = msg
			}
		}
	}

	if len(fields) > 0 {
		return domain.InvoiceParams{}, apperr.NewValidation(fields)
	}
	return params, nil
}

// fieldMessage maps a validator failure to a stable field name and message.
func fieldMessage(fe validator.FieldError) (string, string) {
	switch fe.StructField() {
	case "CustomerID":
		if fe.Tag() == "required" {
			return "customer_id", msgCustomerRequired
		}
		return "customer_id", msgCustomerInvalid
	case "AmountMajor":
		return "amount", msgAmountPositive
	case "Status":
		return "status", msgStatusInvalid
	default:
		return strings.ToLower(fe.StructField()), "invalid value"
	}
}
