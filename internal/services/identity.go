package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"PROBLEMLINK_BACK-END/internal/config"
	"PROBLEMLINK_BACK-END/internal/middleware"
	"PROBLEMLINK_BACK-END/internal/models"
)

// IdentityService looks up identities and issues access tokens for them
type IdentityService struct {
	db  *pgxpool.Pool
	jwt *config.JWTConfig
}

// NewIdentityService creates a new IdentityService instance
func NewIdentityService(db *pgxpool.Pool, jwtCfg *config.JWTConfig) *IdentityService {
	return &IdentityService{db: db, jwt: jwtCfg}
}

// IssueToken verifies the user exists and returns a signed access token
// together with the user record. Tokens stay valid for their full
// lifetime; there is no revocation.
func (s *IdentityService) IssueToken(ctx context.Context, userID string) (string, models.User, error) {
	id, ok := parseEntityID(userID)
	if !ok {
		return "", models.User{}, NewValidationError("userId must be a valid UUID")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := middleware.GenerateToken(user.ID, s.jwt)
	if err != nil {
		return "", models.User{}, NewInternalError(err)
	}

	return token, user, nil
}

// GetUser loads a single identity by id
func (s *IdentityService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, display_name, created_at FROM users WHERE id = $1`,
		userID).Scan(&user.ID, &user.DisplayName, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, NewNotFoundError("User not found")
	}
	if err != nil {
		return models.User{}, NewStoreError(err)
	}
	return user, nil
}
