package models

import (
	"time"

	"github.com/google/uuid"
)

// Match roles. A user matches a problem either as someone offering to
// solve it or as someone affected by it.
const (
	RoleSolver   = "SOLVER"
	RoleAffected = "AFFECTED"
)

// Match represents a (user, problem, role) relation row.
// At most one row exists per (user_id, problem_id) pair; the database
// enforces this with a unique constraint. created_at is overwritten on
// role change, so it records the last match time.
type Match struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProblemID uuid.UUID `json:"problem_id" db:"problem_id"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Collaborator is a match row joined with the matched user
type Collaborator struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	DisplayName *string   `json:"display_name" db:"display_name"`
	Role        string    `json:"role" db:"role"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// UserMatch is a match row joined with its full problem record
type UserMatch struct {
	Problem   Problem   `json:"problem"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
