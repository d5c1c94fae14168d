package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/invoicehub/invoicehub.go/common"
	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/currency"
	"github.com/invoicehub/invoicehub.go/lib/forms"
	"github.com/uptrace/bun"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceForm is the single-invoice read shape used to populate the edit
// form. Amount is converted back from cents to dollars exactly once here.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

func (svc *DashboardService) CreateInvoice(ctx context.Context, params *forms.InvoiceParams) (*models.Invoice, error) {
	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: params.CustomerID,
		Amount:     params.AmountCents,
		Status:     params.Status,
		Date:       time.Now(),
	}
	if _, err := svc.DB.NewInsert().Model(invoice).Exec(ctx); err != nil {
		svc.Logger.Errorf("Error creating invoice: customer_id:%v error: %v", params.CustomerID, err)
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoice touches customer/amount/status only. Date is immutable
// after creation.
func (svc *DashboardService) UpdateInvoice(ctx context.Context, id uuid.UUID, params *forms.InvoiceParams) error {
	res, err := svc.DB.NewUpdate().
		Model((*models.Invoice)(nil)).
		Set("customer_id = ?", params.CustomerID).
		Set("amount = ?", params.AmountCents).
		Set("status = ?", params.Status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		svc.Logger.Errorf("Error updating invoice: invoice_id:%v error: %v", id, err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (svc *DashboardService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := svc.DB.NewDelete().
		Model((*models.Invoice)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		svc.Logger.Errorf("Error deleting invoice: invoice_id:%v error: %v", id, err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (svc *DashboardService) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*InvoiceForm, error) {
	var invoice models.Invoice
	err := svc.DB.NewSelect().Model(&invoice).Where("invoice.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     currency.CentsToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

// FetchFilteredInvoices returns one page of the invoice listing, joined
// with the customer, newest first. page is 1-based.
func (svc *DashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.Invoice, error) {
	if page < 1 {
		page = 1
	}
	var invoices []models.Invoice
	q := svc.DB.NewSelect().
		Model(&invoices).
		Relation("Customer").
		OrderExpr("invoice.date DESC").
		Limit(common.InvoicesPerPage).
		Offset((page - 1) * common.InvoicesPerPage)
	err := applyInvoiceFilter(q, query).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// InvoicePages returns the total page count for the same filter used by
// FetchFilteredInvoices. Both paths share applyInvoiceFilter so counts
// always match fetched content.
func (svc *DashboardService) InvoicePages(ctx context.Context, query string) (int, error) {
	q := svc.DB.NewSelect().
		Model((*models.Invoice)(nil)).
		Join(`LEFT JOIN customers AS customer ON customer.id = invoice.customer_id`)
	count, err := applyInvoiceFilter(q, query).Count(ctx)
	if err != nil {
		return 0, err
	}
	return totalPages(count, common.InvoicesPerPage), nil
}

// LatestInvoices returns the newest invoices joined with their customer.
func (svc *DashboardService) LatestInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := svc.DB.NewSelect().
		Model(&invoices).
		Relation("Customer").
		OrderExpr("invoice.date DESC").
		Limit(common.LatestInvoicesLimit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// InvoiceAmountRow is the shape returned by ListInvoicesByAmount.
type InvoiceAmountRow struct {
	Amount int64  `json:"amount" bun:"amount"`
	Name   string `json:"name" bun:"name"`
}

// ListInvoicesByAmount returns all invoices with the exact amount in
// cents, with the customer name.
func (svc *DashboardService) ListInvoicesByAmount(ctx context.Context, amount int64) ([]InvoiceAmountRow, error) {
	rows := []InvoiceAmountRow{}
	err := svc.DB.NewSelect().
		Model((*models.Invoice)(nil)).
		ColumnExpr("invoice.amount").
		ColumnExpr("customer.name").
		Join(`JOIN customers AS customer ON customer.id = invoice.customer_id`).
		Where("invoice.amount = ?", amount).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// applyInvoiceFilter adds the disjunctive search predicate to q. The
// query string is matched (OR) against customer name, customer email and
// status case-insensitively; against amount when it parses as a number;
// and against the invoice date when it parses as a date. An empty query
// adds no filter.
func applyInvoiceFilter(q *bun.SelectQuery, query string) *bun.SelectQuery {
	if query == "" {
		return q
	}
	pattern := "%" + query + "%"
	return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.WhereOr("customer.name ILIKE ?", pattern).
			WhereOr("customer.email ILIKE ?", pattern).
			WhereOr("invoice.status ILIKE ?", pattern)
		if amount, ok := parseAmountTerm(query); ok {
			q = q.WhereOr("invoice.amount = ?", amount)
		}
		if date, ok := parseDateTerm(query); ok {
			q = q.WhereOr("invoice.date = ?", date)
		}
		return q
	})
}

func parseAmountTerm(query string) (int64, bool) {
	amount, err := strconv.ParseInt(query, 10, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDateTerm(query string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, query); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

func totalPages(count, perPage int) int {
	return (count + perPage - 1) / perPage
}
