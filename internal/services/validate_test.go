package services

import (
	"testing"

	"PROBLEMLINK_BACK-END/internal/models"
)

func TestParseEntityID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"valid v4", "5f7a1c52-9d3e-4b6f-8a21-3c4d5e6f7a81", true},
		{"valid with whitespace", "  5f7a1c52-9d3e-4b6f-8a21-3c4d5e6f7a81 ", true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"truncated", "5f7a1c52-9d3e-4b6f-8a21", false},
		{"nil uuid is version 0", "00000000-0000-0000-0000-000000000000", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := parseEntityID(tc.input)
			if ok != tc.ok {
				t.Errorf("parseEntityID(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
		})
	}
}

func TestParseEntityID_Canonical(t *testing.T) {
	id, ok := parseEntityID("5F7A1C52-9D3E-4B6F-8A21-3C4D5E6F7A81")
	if !ok {
		t.Fatal("Expected uppercase UUID to parse")
	}
	if got := id.String(); got != "5f7a1c52-9d3e-4b6f-8a21-3c4d5e6f7a81" {
		t.Errorf("Expected canonical lowercase form, got %q", got)
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{models.RoleSolver, true},
		{models.RoleAffected, true},
		{"solver", false},
		{"affected", false},
		{" SOLVER ", false},
		{"Affected", false},
		{"", false},
		{"HELPER", false},
	}

	for _, tc := range tests {
		if got := validRole(tc.input); got != tc.want {
			t.Errorf("validRole(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"SOLVER", models.RoleSolver, true},
		{"AFFECTED", models.RoleAffected, true},
		{"solver", models.RoleSolver, true},
		{" affected ", models.RoleAffected, true},
		{"", "", false},
		{"HELPER", "", false},
	}

	for _, tc := range tests {
		got, ok := normalizeRole(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("normalizeRole(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
