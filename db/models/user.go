package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User : User Model
//
// Password always holds a bcrypt hash, never the plaintext.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        uuid.UUID `json:"id" bun:"id,pk,type:uuid"`
	Name      string    `json:"name" bun:",notnull"`
	Email     string    `json:"email" bun:",unique,notnull"`
	Password  string    `json:"-" bun:",notnull"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updated_at" bun:",nullzero"`
}
