package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCustomerID = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"

func TestValidateInvoice(t *testing.T) {
	params, errs := ValidateInvoice(InvoiceInput{
		CustomerID: testCustomerID,
		Amount:     "666",
		Status:     "pending",
	})
	assert.Nil(t, errs)
	assert.Equal(t, testCustomerID, params.CustomerID.String())
	assert.Equal(t, int64(66600), params.AmountCents)
	assert.Equal(t, "pending", params.Status)
}

func TestValidateInvoiceDecimalAmount(t *testing.T) {
	params, errs := ValidateInvoice(InvoiceInput{
		CustomerID: testCustomerID,
		Amount:     "19.99",
		Status:     "paid",
	})
	assert.Nil(t, errs)
	assert.Equal(t, int64(1999), params.AmountCents)
}

func TestValidateInvoiceMissingCustomer(t *testing.T) {
	params, errs := ValidateInvoice(InvoiceInput{
		Amount: "10",
		Status: "paid",
	})
	assert.Nil(t, params)
	assert.Equal(t, []string{MsgSelectCustomer}, errs["customerId"])
}

func TestValidateInvoiceAmountBounds(t *testing.T) {
	for _, amount := range []string{"0", "-1", "-0.01", "abc", ""} {
		params, errs := ValidateInvoice(InvoiceInput{
			CustomerID: testCustomerID,
			Amount:     amount,
			Status:     "paid",
		})
		assert.Nil(t, params, "amount %q must be rejected", amount)
		assert.Equal(t, []string{MsgAmountTooLow}, errs["amount"], "amount %q", amount)
	}
}

func TestValidateInvoiceStatusEnum(t *testing.T) {
	for _, status := range []string{"", "open", "PAID", "settled"} {
		params, errs := ValidateInvoice(InvoiceInput{
			CustomerID: testCustomerID,
			Amount:     "10",
			Status:     status,
		})
		assert.Nil(t, params, "status %q must be rejected", status)
		assert.Equal(t, []string{MsgSelectStatus}, errs["status"], "status %q", status)
	}
}

func TestValidateInvoiceCollectsAllFields(t *testing.T) {
	params, errs := ValidateInvoice(InvoiceInput{})
	assert.Nil(t, params)
	assert.Len(t, errs, 3)
}
