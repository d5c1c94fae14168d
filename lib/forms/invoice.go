// Package forms validates raw form input before it reaches the service
// layer. Validation failures are data, not errors: the caller gets back a
// field-keyed map of messages and no write happens.
package forms

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/lib/currency"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooLow   = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// InvoiceInput carries the raw string fields of an invoice form
// submission.
type InvoiceInput struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceParams is the validated, typed result. AmountCents holds the
// submitted dollar amount converted to cents exactly once.
type InvoiceParams struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      string
}

// FieldErrors maps a form field name to its human-readable messages.
type FieldErrors map[string][]string

type invoiceFields struct {
	CustomerID string  `validate:"required,uuid"`
	Amount     float64 `validate:"required,gt=0"`
	Status     string  `validate:"required,oneof=pending paid"`
}

var validate = validator.New()

// ValidateInvoice checks the raw input and returns either the typed
// params or per-field errors. Exactly one of the two return values is
// non-nil.
func ValidateInvoice(input InvoiceInput) (*InvoiceParams, FieldErrors) {
	errs := FieldErrors{}

	fields := invoiceFields{
		CustomerID: strings.TrimSpace(input.CustomerID),
		Status:     strings.TrimSpace(input.Status),
	}
	amount, parseErr := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if parseErr != nil {
		errs["amount"] = append(errs["amount"], MsgAmountTooLow)
	} else {
		fields.Amount = amount
	}

	if err := validate.Struct(&fields); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.StructField() {
			case "CustomerID":
				errs["customerId"] = append(errs["customerId"], MsgSelectCustomer)
			case "Amount":
				if parseErr == nil {
					errs["amount"] = append(errs["amount"], MsgAmountTooLow)
				}
			case "Status":
				errs["status"] = append(errs["status"], MsgSelectStatus)
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	customerID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		return nil, FieldErrors{"customerId": {MsgSelectCustomer}}
	}

	return &InvoiceParams{
		CustomerID:  customerID,
		AmountCents: currency.DollarsToCents(fields.Amount),
		Status:      fields.Status,
	}, nil
}
