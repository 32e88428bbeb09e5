package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/config"
	"PROBLEMLINK_BACK-END/internal/handlers"
	"PROBLEMLINK_BACK-END/internal/middleware"
	"PROBLEMLINK_BACK-END/internal/services"
)

var testJWT = &config.JWTConfig{Secret: "route-test-secret", AccessTokenTTL: time.Hour}

// SetupRoutes registers on the default mux, so it may only run once per
// test binary.
func init() {
	logger := zap.NewNop()
	SetupRoutes(
		handlers.NewAuthHandler(services.NewIdentityService(nil, testJWT), logger),
		handlers.NewUsersHandler(services.NewDirectoryService(nil), logger),
		handlers.NewProblemsHandler(services.NewCatalogService(nil), logger),
		handlers.NewMatchesHandler(services.NewLedgerService(nil), logger),
		handlers.NewHealthHandler(nil),
		testJWT,
	)
}

func serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	http.DefaultServeMux.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	w := serve(httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestMatchRouteRequiresAuth(t *testing.T) {
	w := serve(httptest.NewRequest("POST", "/problems/"+uuid.NewString()+"/match", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without bearer token, got %d", w.Code)
	}
}

func TestMeRouteRequiresAuth(t *testing.T) {
	w := serve(httptest.NewRequest("GET", "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without bearer token, got %d", w.Code)
	}
}

func TestProblemUsersRoute_BadID(t *testing.T) {
	// /problems/{id}/users is public; a malformed id is rejected with 400
	w := serve(httptest.NewRequest("GET", "/problems/abc/users", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestProblemSubrouteUnknown(t *testing.T) {
	w := serve(httptest.NewRequest("GET", "/problems/"+uuid.NewString()+"/comments", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestMatchRoute_BadIDWithAuth(t *testing.T) {
	token, err := middleware.GenerateToken(uuid.New(), testJWT)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/problems/abc/match", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := serve(req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
