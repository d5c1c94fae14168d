package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/invoicehub/invoicehub.go/db/models"
	"github.com/invoicehub/invoicehub.go/lib/security"
	"github.com/uptrace/bun"
)

// SeedAll upserts the demo users, customers, invoices and revenue rows
// in a single transaction. Rows that already exist are left untouched,
// so seeding is safe to repeat.
func (svc *DashboardService) SeedAll(ctx context.Context) error {
	return svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := seedAllUsers(ctx, tx); err != nil {
			return err
		}
		if err := seedAllCustomers(ctx, tx); err != nil {
			return err
		}
		if err := seedAllInvoices(ctx, tx); err != nil {
			return err
		}
		return seedAllRevenue(ctx, tx)
	})
}

func seedAllUsers(ctx context.Context, tx bun.Tx) error {
	for _, seed := range seedUsers {
		hashedPassword, err := security.HashPassword(seed.Password)
		if err != nil {
			return err
		}
		user := &models.User{
			ID:       seed.ID,
			Name:     seed.Name,
			Email:    seed.Email,
			Password: hashedPassword,
		}
		if _, err := tx.NewInsert().Model(user).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedAllCustomers(ctx context.Context, tx bun.Tx) error {
	for _, seed := range seedCustomers {
		customer := &models.Customer{
			ID:       seed.ID,
			Name:     seed.Name,
			Email:    seed.Email,
			ImageURL: seed.ImageURL,
		}
		if _, err := tx.NewInsert().Model(customer).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedAllInvoices(ctx context.Context, tx bun.Tx) error {
	for _, seed := range seedInvoices {
		date, err := time.Parse("2006-01-02", seed.Date)
		if err != nil {
			return err
		}
		invoice := &models.Invoice{
			ID:         seed.ID,
			CustomerID: seed.CustomerID,
			Amount:     seed.Amount,
			Status:     seed.Status,
			Date:       date,
		}
		if _, err := tx.NewInsert().Model(invoice).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedAllRevenue(ctx context.Context, tx bun.Tx) error {
	for _, seed := range seedRevenues {
		revenue := &models.Revenue{
			Month:   seed.Month,
			Revenue: seed.Revenue,
		}
		if _, err := tx.NewInsert().Model(revenue).On("CONFLICT (month) DO NOTHING").Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
