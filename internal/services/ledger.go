package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"PROBLEMLINK_BACK-END/internal/models"
)

const (
	collaboratorLimit   = 500
	userMatchesDefault  = 200
	userMatchesMaxLimit = 500
)

// The store's conflict-resolution clause is what guarantees at most one
// match row per (user_id, problem_id) pair: concurrent writers race at
// the store and the last one wins without creating a duplicate. Role
// changes overwrite created_at, so it records the last match time.
const setMatchQuery = `INSERT INTO problem_matches (user_id, problem_id, role, created_at)
	 VALUES ($1, $2, $3, now())
	 ON CONFLICT (user_id, problem_id)
	 DO UPDATE SET role = EXCLUDED.role, created_at = now()
	 RETURNING user_id, problem_id, role, created_at`

const removeMatchQuery = `DELETE FROM problem_matches WHERE user_id = $1 AND problem_id = $2`

const listCollaboratorsQuery = `SELECT pm.user_id, u.display_name, pm.role, pm.created_at
	   FROM problem_matches pm
	   JOIN users u ON u.id = pm.user_id
	  WHERE pm.problem_id = $1
	    AND ($2 = '' OR pm.role = $2)
	  ORDER BY pm.created_at DESC
	  LIMIT $3`

const listUserMatchesQuery = `SELECT pm.role, pm.created_at,
	        p.id, p.title, p.description, p.category, p.location, p.country_code, p.created_at
	   FROM problem_matches pm
	   JOIN problems p ON p.id = pm.problem_id
	  WHERE pm.user_id = $1
	  ORDER BY pm.created_at DESC
	  LIMIT $2`

// clampMatchLimit applies the default and cap for the my-matches listing
func clampMatchLimit(limit int) int {
	if limit <= 0 {
		return userMatchesDefault
	}
	if limit > userMatchesMaxLimit {
		return userMatchesMaxLimit
	}
	return limit
}

// LedgerService manages the (user, problem, role) match relation
type LedgerService struct {
	db *pgxpool.Pool
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(db *pgxpool.Pool) *LedgerService {
	return &LedgerService{db: db}
}

// SetMatch inserts or updates the caller's match for a problem. The
// role must be exactly SOLVER or AFFECTED. Exactly one row exists for
// the (user, problem) pair afterwards.
func (s *LedgerService) SetMatch(ctx context.Context, userID uuid.UUID, problemID, role string) (models.Match, error) {
	pid, ok := parseEntityID(problemID)
	if !ok {
		return models.Match{}, NewValidationError("problem id must be a valid UUID")
	}
	if !validRole(role) {
		return models.Match{}, NewValidationError("role must be SOLVER or AFFECTED")
	}

	var exists bool
	if err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM problems WHERE id = $1)`, pid).Scan(&exists); err != nil {
		return models.Match{}, NewStoreError(err)
	}
	if !exists {
		return models.Match{}, NewNotFoundError("Problem not found")
	}

	var match models.Match
	err := s.db.QueryRow(ctx, setMatchQuery, userID, pid, role).
		Scan(&match.UserID, &match.ProblemID, &match.Role, &match.CreatedAt)
	if err != nil {
		return models.Match{}, NewStoreError(err)
	}

	return match, nil
}

// RemoveMatch deletes the caller's match for a problem. Deleting zero
// rows is not an error.
func (s *LedgerService) RemoveMatch(ctx context.Context, userID uuid.UUID, problemID string) error {
	pid, ok := parseEntityID(problemID)
	if !ok {
		return NewValidationError("problem id must be a valid UUID")
	}

	if _, err := s.db.Exec(ctx, removeMatchQuery, userID, pid); err != nil {
		return NewStoreError(err)
	}

	return nil
}

// ListCollaborators returns the canonical problem id and up to 500
// match rows for it joined with the matched user, newest first. An
// unknown role filter is ignored rather than rejected.
func (s *LedgerService) ListCollaborators(ctx context.Context, problemID, roleFilter string) (uuid.UUID, []models.Collaborator, error) {
	pid, ok := parseEntityID(problemID)
	if !ok {
		return uuid.Nil, nil, NewValidationError("problem id must be a valid UUID")
	}
	role, ok := normalizeRole(roleFilter)
	if !ok {
		role = ""
	}

	rows, err := s.db.Query(ctx, listCollaboratorsQuery, pid, role, collaboratorLimit)
	if err != nil {
		return uuid.Nil, nil, NewStoreError(err)
	}
	defer rows.Close()

	collaborators := make([]models.Collaborator, 0)
	for rows.Next() {
		var c models.Collaborator
		if err := rows.Scan(&c.UserID, &c.DisplayName, &c.Role, &c.CreatedAt); err != nil {
			return uuid.Nil, nil, NewStoreError(err)
		}
		collaborators = append(collaborators, c)
	}
	if err := rows.Err(); err != nil {
		return uuid.Nil, nil, NewStoreError(err)
	}

	return pid, collaborators, nil
}

// ListUserMatches returns up to limit of the user's match rows joined
// with their problems, newest first. The inner join silently drops rows
// whose problem no longer resolves.
func (s *LedgerService) ListUserMatches(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserMatch, error) {
	rows, err := s.db.Query(ctx, listUserMatchesQuery, userID, clampMatchLimit(limit))
	if err != nil {
		return nil, NewStoreError(err)
	}
	defer rows.Close()

	matches := make([]models.UserMatch, 0)
	for rows.Next() {
		var m models.UserMatch
		if err := rows.Scan(&m.Role, &m.CreatedAt,
			&m.Problem.ID, &m.Problem.Title, &m.Problem.Description, &m.Problem.Category,
			&m.Problem.Location, &m.Problem.CountryCode, &m.Problem.CreatedAt); err != nil {
			return nil, NewStoreError(err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStoreError(err)
	}

	return matches, nil
}
