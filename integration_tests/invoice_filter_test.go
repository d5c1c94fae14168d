package integration_tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type InvoiceFilterTestSuite struct {
	suite.Suite
	svc *service.DashboardService
}

func (suite *InvoiceFilterTestSuite) SetupSuite() {
	suite.svc = dashboardTestServiceInit(suite.T())
	for _, table := range []string{"invoices", "revenue", "customers", "users"} {
		require.NoError(suite.T(), clearTable(suite.svc, table))
	}
	require.NoError(suite.T(), suite.svc.SeedAll(context.Background()))
}

// Every filter must hand the same invoice set to the pager and the page
// fetcher: walking all reported pages yields each matching invoice
// exactly once, and the page past the end is empty.
func (suite *InvoiceFilterTestSuite) TestPagesCoverFilteredSet() {
	ctx := context.Background()
	for _, query := range []string{"", "evil", "666", "pending", "2023-06-27"} {
		pages, err := suite.svc.InvoicePages(ctx, query)
		require.NoError(suite.T(), err, "query %q", query)
		require.Greater(suite.T(), pages, 0, "query %q should match seeded invoices", query)

		seen := map[uuid.UUID]bool{}
		for page := 1; page <= pages; page++ {
			invoices, err := suite.svc.FetchFilteredInvoices(ctx, query, page)
			require.NoError(suite.T(), err)
			assert.NotEmpty(suite.T(), invoices, "query %q page %d", query, page)
			assert.LessOrEqual(suite.T(), len(invoices), common.InvoicesPerPage)
			for _, invoice := range invoices {
				assert.False(suite.T(), seen[invoice.ID], "query %q returned invoice %s twice", query, invoice.ID)
				seen[invoice.ID] = true
			}
		}
		assert.Greater(suite.T(), len(seen), (pages-1)*common.InvoicesPerPage, "query %q", query)
		assert.LessOrEqual(suite.T(), len(seen), pages*common.InvoicesPerPage, "query %q", query)

		beyond, err := suite.svc.FetchFilteredInvoices(ctx, query, pages+1)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), beyond, "query %q page %d", query, pages+1)
	}
}

func (suite *InvoiceFilterTestSuite) TestUnmatchedQueryHasNoPages() {
	ctx := context.Background()
	pages, err := suite.svc.InvoicePages(ctx, "no such customer anywhere")
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), pages)

	invoices, err := suite.svc.FetchFilteredInvoices(ctx, "no such customer anywhere", 1)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), invoices)
}

// The edit form reads an invoice back in dollars. The seeded 666-cent
// invoice must come back as 6.66, not 666.
func (suite *InvoiceFilterTestSuite) TestFindInvoiceReturnsDollars() {
	form, err := suite.svc.FindInvoiceByID(context.Background(), uuid.MustParse("c2cd33d6-5399-4b52-b82a-e7b1ab2e3a61"))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6.66, form.Amount)
	assert.Equal(suite.T(), common.InvoiceStatusPending, form.Status)
}

func TestInvoiceFilterSuite(t *testing.T) {
	suite.Run(t, new(InvoiceFilterTestSuite))
}
