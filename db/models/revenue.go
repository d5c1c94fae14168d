package models

import "github.com/uptrace/bun"

// Revenue : precomputed monthly revenue aggregate, keyed by month
type Revenue struct {
	bun.BaseModel `bun:"table:revenue"`

	Month   string `json:"month" bun:",pk"`
	Revenue int64  `json:"revenue" bun:",notnull"`
}
