package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered identity
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DisplayName *string   `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
