package services

import (
	"strings"
	"testing"
)

func TestProblemFiltersNormalized(t *testing.T) {
	f := ProblemFilters{
		Search:      "  water ",
		Category:    " infrastructure ",
		Location:    " Lagos ",
		CountryCode: " ng ",
	}.normalized()

	if f.Search != "water" || f.Category != "infrastructure" || f.Location != "Lagos" {
		t.Errorf("Expected trimmed filters, got %+v", f)
	}
	if f.CountryCode != "NG" {
		t.Errorf("Expected uppercased country code, got %q", f.CountryCode)
	}
}

func TestBuildProblemSearch_NoFilters(t *testing.T) {
	query, args := buildProblemSearch(ProblemFilters{})

	if strings.Contains(query, "WHERE") {
		t.Errorf("Expected no WHERE clause, got:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY p.created_at DESC") {
		t.Errorf("Expected newest-first ordering, got:\n%s", query)
	}
	if !strings.Contains(query, "collaborator_count") {
		t.Errorf("Expected collaborator count column, got:\n%s", query)
	}
	// Only the limit is bound
	if len(args) != 1 || args[0] != catalogLimit {
		t.Errorf("Expected single limit arg %d, got %v", catalogLimit, args)
	}
}

func TestBuildProblemSearch_AllFilters(t *testing.T) {
	f := ProblemFilters{
		Search:      "flood",
		Category:    "infrastructure",
		Location:    "lagos",
		CountryCode: "NG",
	}
	query, args := buildProblemSearch(f)

	if !strings.Contains(query, "p.category = $1") {
		t.Errorf("Expected exact category predicate, got:\n%s", query)
	}
	if !strings.Contains(query, "p.country_code = $2") {
		t.Errorf("Expected exact country predicate, got:\n%s", query)
	}
	if !strings.Contains(query, "p.location ILIKE") {
		t.Errorf("Expected substring location predicate, got:\n%s", query)
	}
	if !strings.Contains(query, "p.title ILIKE '%' || $4 || '%' OR p.description ILIKE '%' || $4 || '%'") {
		t.Errorf("Expected title-or-description search predicate, got:\n%s", query)
	}
	if strings.Count(query, " AND ") != 3 {
		t.Errorf("Expected predicates joined with AND, got:\n%s", query)
	}

	want := []any{"infrastructure", "NG", "lagos", "flood", catalogLimit}
	if len(args) != len(want) {
		t.Fatalf("Expected %d args, got %d: %v", len(want), len(args), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: expected %v, got %v", i, want[i], args[i])
		}
	}
}

func TestBuildProblemSearch_SearchOnly(t *testing.T) {
	query, args := buildProblemSearch(ProblemFilters{Search: "tutoring"})

	if !strings.Contains(query, "WHERE (p.title ILIKE") {
		t.Errorf("Expected search-only WHERE clause, got:\n%s", query)
	}
	if strings.Contains(query, " AND ") {
		t.Errorf("Expected no AND with a single predicate, got:\n%s", query)
	}
	if len(args) != 2 {
		t.Errorf("Expected search arg plus limit, got %v", args)
	}
}
