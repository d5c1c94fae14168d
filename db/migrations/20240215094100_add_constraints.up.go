package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- amounts are stored in cents and must be positive
				ALTER TABLE invoices
				ADD CONSTRAINT check_positive_amount
				CHECK (amount > 0);

			-- invoice status is a two-value enum
				ALTER TABLE invoices
				ADD CONSTRAINT check_invoice_status
				CHECK (status IN ('pending', 'paid'));
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
