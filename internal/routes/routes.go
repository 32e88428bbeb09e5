package routes

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"PROBLEMLINK_BACK-END/internal/config"
	"PROBLEMLINK_BACK-END/internal/handlers"
	"PROBLEMLINK_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	problemsHandler *handlers.ProblemsHandler,
	matchesHandler *handlers.MatchesHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	http.HandleFunc("/health", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Identity routes
	http.HandleFunc("/login", authHandler.Login)
	http.HandleFunc("/me", middleware.AuthMiddleware(authHandler.Me, jwtCfg))
	http.HandleFunc("/me/matches", middleware.AuthMiddleware(matchesHandler.MyMatches, jwtCfg))

	// Directory and catalog routes
	http.HandleFunc("/users", usersHandler.ListUsers)
	http.HandleFunc("/problems", problemsHandler.ListProblems)

	// Problem sub-resources: /problems/{id}/match and /problems/{id}/users
	matchRoute := middleware.AuthMiddleware(matchesHandler.Match, jwtCfg)
	http.HandleFunc("/problems/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/match"):
			matchRoute(w, r)
		case strings.HasSuffix(r.URL.Path, "/users"):
			matchesHandler.ProblemUsers(w, r)
		default:
			http.NotFound(w, r)
		}
	})

	// Swagger documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ProblemLink backend is running."))
}
