package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"PROBLEMLINK_BACK-END/internal/models"
)

// directoryLimit caps the user directory listing
const directoryLimit = 500

// DirectoryService lists registered identities
type DirectoryService struct {
	db *pgxpool.Pool
}

// NewDirectoryService creates a new DirectoryService instance
func NewDirectoryService(db *pgxpool.Pool) *DirectoryService {
	return &DirectoryService{db: db}
}

// ListUsers returns up to 500 users, newest first
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, display_name, created_at
		   FROM users
		  ORDER BY created_at DESC
		  LIMIT $1`, directoryLimit)
	if err != nil {
		return nil, NewStoreError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.CreatedAt); err != nil {
			return nil, NewStoreError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStoreError(err)
	}

	return users, nil
}
