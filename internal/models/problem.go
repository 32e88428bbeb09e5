package models

import (
	"time"

	"github.com/google/uuid"
)

// Problem represents a reported problem open for collaboration
type Problem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Location    string    `json:"location" db:"location"`
	CountryCode *string   `json:"country_code" db:"country_code"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProblemWithCount is a problem annotated with the number of matched users
type ProblemWithCount struct {
	Problem
	CollaboratorCount int `json:"collaborator_count" db:"collaborator_count"`
}
