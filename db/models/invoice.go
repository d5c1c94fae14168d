package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
//
// Amount is stored in integer cents. The dollars-to-cents conversion is
// applied exactly once on the write path and reversed exactly once on the
// read path (see service.FindInvoiceByID).
type Invoice struct {
	bun.BaseModel `bun:"table:invoices,alias:invoice"`

	ID         uuid.UUID    `json:"id" bun:"id,pk,type:uuid"`
	CustomerID uuid.UUID    `json:"customer_id" bun:"customer_id,type:uuid,notnull"`
	Customer   *Customer    `json:"-" bun:"rel:belongs-to,join:customer_id=id"`
	Amount     int64        `json:"amount" bun:",notnull"`
	Status     string       `json:"status" bun:",notnull,default:'pending'"`
	Date       time.Time    `json:"date" bun:",notnull"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}
