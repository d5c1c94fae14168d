package service

import (
	"context"

	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"golang.org/x/sync/errgroup"
)

// CardTotals carries the dashboard card numbers. The per-status sums are
// in cents; buckets with no invoices stay zero.
type CardTotals struct {
	NumberOfInvoices  int
	NumberOfCustomers int
	PaidCents         int64
	PendingCents      int64
}

type statusSum struct {
	Status string `bun:"status"`
	Total  int64  `bun:"total"`
}

// CardData runs its three sub-queries concurrently and joins on
// completion.
func (svc *DashboardService) CardData(ctx context.Context) (*CardTotals, error) {
	totals := &CardTotals{}
	var sums []statusSum

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := svc.DB.NewSelect().Model((*models.Invoice)(nil)).Count(ctx)
		totals.NumberOfInvoices = count
		return err
	})
	g.Go(func() error {
		count, err := svc.DB.NewSelect().Model((*models.Customer)(nil)).Count(ctx)
		totals.NumberOfCustomers = count
		return err
	})
	g.Go(func() error {
		return svc.DB.NewSelect().
			Model((*models.Invoice)(nil)).
			ColumnExpr("invoice.status").
			ColumnExpr("SUM(invoice.amount) AS total").
			GroupExpr("invoice.status").
			Scan(ctx, &sums)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, sum := range sums {
		switch sum.Status {
		case common.InvoiceStatusPaid:
			totals.PaidCents = sum.Total
		case common.InvoiceStatusPending:
			totals.PendingCents = sum.Total
		}
	}
	return totals, nil
}

// FetchRevenue returns the precomputed monthly revenue rows.
func (svc *DashboardService) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	revenue := []models.Revenue{}
	err := svc.DB.NewSelect().Model(&revenue).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return revenue, nil
}
