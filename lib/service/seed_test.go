package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/stretchr/testify/assert"
)

func TestSeedInvoicesReferenceSeedCustomers(t *testing.T) {
	customerIDs := map[uuid.UUID]bool{}
	for _, customer := range seedCustomers {
		customerIDs[customer.ID] = true
	}
	for _, invoice := range seedInvoices {
		assert.True(t, customerIDs[invoice.CustomerID], "invoice %s references unknown customer", invoice.ID)
	}
}

func TestSeedInvoicesAreValid(t *testing.T) {
	ids := map[uuid.UUID]bool{}
	for _, invoice := range seedInvoices {
		assert.False(t, ids[invoice.ID], "duplicate invoice id %s", invoice.ID)
		ids[invoice.ID] = true
		assert.Greater(t, invoice.Amount, int64(0))
		assert.True(t, common.ValidInvoiceStatus(invoice.Status), "invoice %s has status %q", invoice.ID, invoice.Status)
		_, err := time.Parse("2006-01-02", invoice.Date)
		assert.NoError(t, err)
	}
}

func TestSeedContainsTheEvilAmount(t *testing.T) {
	// the demo query endpoint looks for amount 666
	found := false
	for _, invoice := range seedInvoices {
		if invoice.Amount == 666 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSeedRevenueMonthsAreUnique(t *testing.T) {
	months := map[string]bool{}
	for _, rev := range seedRevenues {
		assert.False(t, months[rev.Month], "duplicate month %s", rev.Month)
		months[rev.Month] = true
	}
	assert.Len(t, months, 12)
}
