package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Customer : Customer Model
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:customer"`

	ID        uuid.UUID `json:"id" bun:"id,pk,type:uuid"`
	Name      string    `json:"name" bun:",notnull"`
	Email     string    `json:"email" bun:",notnull"`
	ImageURL  string    `json:"image_url" bun:"image_url,nullzero"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
