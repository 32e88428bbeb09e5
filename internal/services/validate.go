package services

import (
	"strings"

	"github.com/google/uuid"

	"PROBLEMLINK_BACK-END/internal/models"
)

// parseEntityID parses an id string, accepting only RFC 4122 UUIDs of
// versions 1 through 5.
func parseEntityID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	if v := id.Version(); v < 1 || v > 5 {
		return uuid.Nil, false
	}
	return id, true
}

// validRole reports whether role is an exact member of the role enum.
// Match writes take only the exact uppercase forms.
func validRole(role string) bool {
	return role == models.RoleSolver || role == models.RoleAffected
}

// normalizeRole uppercases a role and reports whether it is a valid
// member of the role enum. Only the read-side collaborator filter is
// case-insensitive.
func normalizeRole(role string) (string, bool) {
	role = strings.ToUpper(strings.TrimSpace(role))
	switch role {
	case models.RoleSolver, models.RoleAffected:
		return role, true
	}
	return "", false
}
