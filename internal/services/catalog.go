package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"PROBLEMLINK_BACK-END/internal/models"
)

// catalogLimit caps the problem listing
const catalogLimit = 200

// ProblemFilters are the optional search predicates for the catalog.
// Empty strings are treated as absent.
type ProblemFilters struct {
	Search      string
	Category    string
	Location    string
	CountryCode string
}

// normalized trims all filters and uppercases the country code
func (f ProblemFilters) normalized() ProblemFilters {
	return ProblemFilters{
		Search:      strings.TrimSpace(f.Search),
		Category:    strings.TrimSpace(f.Category),
		Location:    strings.TrimSpace(f.Location),
		CountryCode: strings.ToUpper(strings.TrimSpace(f.CountryCode)),
	}
}

// buildProblemSearch assembles the catalog query for the given filters.
// Active predicates are combined with AND; the free-text search matches
// title OR description. Each problem row carries the number of match
// rows referencing it.
func buildProblemSearch(f ProblemFilters) (string, []any) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT p.id, p.title, p.description, p.category, p.location, p.country_code, p.created_at,
	        COALESCE((SELECT COUNT(1) FROM problem_matches pm WHERE pm.problem_id = p.id), 0) AS collaborator_count
	   FROM problems p`)

	args := []any{}
	conds := []string{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		conds = append(conds, "p.category = "+arg(f.Category))
	}
	if f.CountryCode != "" {
		conds = append(conds, "p.country_code = "+arg(f.CountryCode))
	}
	if f.Location != "" {
		conds = append(conds, "p.location ILIKE '%' || "+arg(f.Location)+" || '%'")
	}
	if f.Search != "" {
		p := arg(f.Search)
		conds = append(conds, "(p.title ILIKE '%' || "+p+" || '%' OR p.description ILIKE '%' || "+p+" || '%')")
	}

	if len(conds) > 0 {
		sb.WriteString("\n	  WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\n	  ORDER BY p.created_at DESC")
	sb.WriteString("\n	  LIMIT " + arg(catalogLimit))

	return sb.String(), args
}

// CatalogService lists and searches problem records
type CatalogService struct {
	db *pgxpool.Pool
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *pgxpool.Pool) *CatalogService {
	return &CatalogService{db: db}
}

// SearchProblems returns up to 200 problems matching the filters,
// newest first, each annotated with its collaborator count.
func (s *CatalogService) SearchProblems(ctx context.Context, filters ProblemFilters) ([]models.ProblemWithCount, error) {
	query, args := buildProblemSearch(filters.normalized())

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, NewStoreError(err)
	}
	defer rows.Close()

	problems := make([]models.ProblemWithCount, 0)
	for rows.Next() {
		var p models.ProblemWithCount
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Location,
			&p.CountryCode, &p.CreatedAt, &p.CollaboratorCount); err != nil {
			return nil, NewStoreError(err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStoreError(err)
	}

	return problems, nil
}
