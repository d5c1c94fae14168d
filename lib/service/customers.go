package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/db/models"
)

// CustomerTableRow is one row of the filtered customer table: the
// customer plus its invoice totals (in cents).
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id" bun:"id"`
	Name          string    `json:"name" bun:"name"`
	Email         string    `json:"email" bun:"email"`
	ImageURL      string    `json:"image_url" bun:"image_url"`
	TotalInvoices int64     `json:"total_invoices" bun:"total_invoices"`
	TotalPending  int64     `json:"total_pending" bun:"total_pending"`
	TotalPaid     int64     `json:"total_paid" bun:"total_paid"`
}

// Customers returns all customers ordered by name, for form select
// options.
func (svc *DashboardService) Customers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := svc.DB.NewSelect().
		Model(&customers).
		Column("id", "name").
		OrderExpr("customer.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// FetchFilteredCustomers returns the customer table with per-customer
// invoice totals, filtered by a case-insensitive substring match on name
// or email.
func (svc *DashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]CustomerTableRow, error) {
	rows := []CustomerTableRow{}
	pattern := "%" + query + "%"
	err := svc.DB.NewRaw(`
		SELECT
		  customers.id,
		  customers.name,
		  customers.email,
		  customers.image_url,
		  COUNT(invoices.id) AS total_invoices,
		  COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		  COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE
		  customers.name ILIKE ? OR
		  customers.email ILIKE ?
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC
	`, pattern, pattern).Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
