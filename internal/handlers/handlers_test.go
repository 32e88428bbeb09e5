package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/services"
	"PROBLEMLINK_BACK-END/internal/utils"
)

// Handlers are exercised on their validation paths only; services get a
// nil pool, so any test that reached the store would panic.

func newTestHandlers() (*AuthHandler, *MatchesHandler, *HealthHandler) {
	logger := zap.NewNop()
	identity := services.NewIdentityService(nil, nil)
	ledger := services.NewLedgerService(nil)
	return NewAuthHandler(identity, logger), NewMatchesHandler(ledger, logger), NewHealthHandler(nil)
}

func TestHealthCheck(t *testing.T) {
	_, _, health := newTestHandlers()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	health.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body["ok"] {
		t.Errorf("Expected {\"ok\":true}, got %s", w.Body.String())
	}
}

func TestLogin_BadRequests(t *testing.T) {
	auth, _, _ := newTestHandlers()

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"wrong method", "GET", "", http.StatusMethodNotAllowed},
		{"invalid json", "POST", "{", http.StatusBadRequest},
		{"missing userId", "POST", `{}`, http.StatusBadRequest},
		{"malformed uuid", "POST", `{"userId":"abc"}`, http.StatusBadRequest},
		{"truncated uuid", "POST", `{"userId":"5f7a1c52-9d3e-4b6f"}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/login", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			auth.Login(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestMe_NoUserContext(t *testing.T) {
	auth, _, _ := newTestHandlers()

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	auth.Me(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestSetMatch_Validation(t *testing.T) {
	_, matches, _ := newTestHandlers()
	userID := uuid.New()
	problemID := uuid.NewString()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"bad problem id", "/problems/abc/match", `{"role":"SOLVER"}`, http.StatusBadRequest},
		{"missing role", "/problems/" + problemID + "/match", `{}`, http.StatusBadRequest},
		{"bad role", "/problems/" + problemID + "/match", `{"role":"HELPER"}`, http.StatusBadRequest},
		{"lowercase role", "/problems/" + problemID + "/match", `{"role":"solver"}`, http.StatusBadRequest},
		{"padded role", "/problems/" + problemID + "/match", `{"role":" AFFECTED "}`, http.StatusBadRequest},
		{"invalid json", "/problems/" + problemID + "/match", `{`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.path, strings.NewReader(tc.body))
			req = req.WithContext(utils.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()
			matches.SetMatch(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestSetMatch_NoUserContext(t *testing.T) {
	_, matches, _ := newTestHandlers()

	req := httptest.NewRequest("POST", "/problems/"+uuid.NewString()+"/match", strings.NewReader(`{"role":"SOLVER"}`))
	w := httptest.NewRecorder()
	matches.SetMatch(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRemoveMatch_BadProblemID(t *testing.T) {
	_, matches, _ := newTestHandlers()

	req := httptest.NewRequest("DELETE", "/problems/abc/match", nil)
	req = req.WithContext(utils.WithUserID(req.Context(), uuid.New()))
	w := httptest.NewRecorder()
	matches.RemoveMatch(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestProblemUsers_BadProblemID(t *testing.T) {
	_, matches, _ := newTestHandlers()

	req := httptest.NewRequest("GET", "/problems/abc/users", nil)
	w := httptest.NewRecorder()
	matches.ProblemUsers(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestMyMatches_NoUserContext(t *testing.T) {
	_, matches, _ := newTestHandlers()

	req := httptest.NewRequest("GET", "/me/matches?limit=3", nil)
	w := httptest.NewRecorder()
	matches.MyMatches(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestMatchDispatch_MethodNotAllowed(t *testing.T) {
	_, matches, _ := newTestHandlers()

	req := httptest.NewRequest("PUT", "/problems/"+uuid.NewString()+"/match", nil)
	req = req.WithContext(utils.WithUserID(req.Context(), uuid.New()))
	w := httptest.NewRecorder()
	matches.Match(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestWriteServiceError_Kinds(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name    string
		err     error
		status  int
		errType string
		message string
	}{
		{"validation", services.NewValidationError("bad input"), http.StatusBadRequest, "Validation error", "bad input"},
		{"auth", services.NewAuthError("no token"), http.StatusUnauthorized, "Unauthorized", "no token"},
		{"not found", services.NewNotFoundError("Problem not found"), http.StatusNotFound, "Not Found", "Problem not found"},
		// Store failures surface the store's message
		{"store", services.NewStoreError(errors.New("connection refused")), http.StatusInternalServerError, "Database error", "connection refused"},
		// Internal failures stay generic; the cause is only logged
		{"internal", services.NewInternalError(errors.New("signing key corrupt")), http.StatusInternalServerError, "Internal server error", "unexpected error"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "Internal server error", "unexpected error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeServiceError(w, logger, tc.err)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["error"] != tc.errType || body["message"] != tc.message {
				t.Errorf("Expected (%q, %q), got (%q, %q)", tc.errType, tc.message, body["error"], body["message"])
			}
		})
	}
}

func TestProblemIDFromPath(t *testing.T) {
	id := uuid.NewString()
	if got := problemIDFromPath("/problems/"+id+"/match", "match"); got != id {
		t.Errorf("Expected %q, got %q", id, got)
	}
	if got := problemIDFromPath("/problems/"+id+"/users", "users"); got != id {
		t.Errorf("Expected %q, got %q", id, got)
	}
}
