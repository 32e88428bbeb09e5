package services

import (
	"context"
	"testing"
)

// Bad user ids must be rejected before any lookup; the nil pool would
// panic otherwise.
func TestIssueToken_InvalidUserID(t *testing.T) {
	s := NewIdentityService(nil, nil)

	for _, id := range []string{"", "nope", "5f7a1c52-9d3e", "00000000-0000-0000-0000-000000000000"} {
		_, _, err := s.IssueToken(context.Background(), id)
		assertKind(t, err, KindValidation)
	}
}
