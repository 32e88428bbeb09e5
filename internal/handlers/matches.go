package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/dto"
	"PROBLEMLINK_BACK-END/internal/services"
	"PROBLEMLINK_BACK-END/internal/utils"
)

// MatchesHandler manages the match ledger endpoints
type MatchesHandler struct {
	ledger *services.LedgerService
	logger *zap.Logger
}

// NewMatchesHandler creates a new MatchesHandler instance
func NewMatchesHandler(ledger *services.LedgerService, logger *zap.Logger) *MatchesHandler {
	return &MatchesHandler{ledger: ledger, logger: logger}
}

// problemIDFromPath extracts the {id} segment of /problems/{id}/<sub>
func problemIDFromPath(path, sub string) string {
	id := strings.TrimPrefix(path, "/problems/")
	return strings.TrimSuffix(id, "/"+sub)
}

// Match dispatches by HTTP method for /problems/{id}/match
func (h *MatchesHandler) Match(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.SetMatch(w, r)
	case http.MethodDelete:
		h.RemoveMatch(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SetMatch handles POST /problems/{id}/match
// @Summary Match the caller to a problem
// @Description Insert-or-update the caller's (user, problem, role) relation; last write wins
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Problem ID"
// @Param request body dto.SetMatchRequest true "Match payload"
// @Success 200 {object} dto.SetMatchResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid problem id or role"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems/{id}/match [post]
func (h *MatchesHandler) SetMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.SetMatchRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	problemID := problemIDFromPath(r.URL.Path, "match")
	match, err := h.ledger.SetMatch(r.Context(), userID, problemID, req.Role)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SetMatchResponse{
		OK: true,
		Match: dto.MatchResponse{
			UserID:    match.UserID.String(),
			ProblemID: match.ProblemID.String(),
			Role:      match.Role,
			CreatedAt: utils.FormatTimestamp(match.CreatedAt),
		},
	})
}

// RemoveMatch handles DELETE /problems/{id}/match
// @Summary Unmatch the caller from a problem
// @Description Idempotent: succeeds even when no match row exists
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Problem ID"
// @Success 200 {object} dto.UnmatchResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid problem id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems/{id}/match [delete]
func (h *MatchesHandler) RemoveMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	problemID := problemIDFromPath(r.URL.Path, "match")
	if err := h.ledger.RemoveMatch(r.Context(), userID, problemID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UnmatchResponse{OK: true})
}

// ProblemUsers handles GET /problems/{id}/users
// @Summary List users matched to a problem
// @Description Up to 500 match rows joined with the matched user, newest first
// @Tags matches
// @Produce json
// @Param id path string true "Problem ID"
// @Param role query string false "SOLVER or AFFECTED; unknown values are ignored"
// @Success 200 {object} dto.ProblemUsersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid problem id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems/{id}/users [get]
func (h *MatchesHandler) ProblemUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	problemID, collaborators, err := h.ledger.ListCollaborators(r.Context(),
		problemIDFromPath(r.URL.Path, "users"), r.URL.Query().Get("role"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]dto.CollaboratorItem, 0, len(collaborators))
	for _, c := range collaborators {
		items = append(items, dto.CollaboratorItem{
			User: dto.CollaboratorUser{
				ID:          c.UserID.String(),
				DisplayName: c.DisplayName,
			},
			Role:      c.Role,
			CreatedAt: utils.FormatTimestamp(c.CreatedAt),
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProblemUsersResponse{
		ProblemID: problemID.String(),
		Items:     items,
	})
}

// MyMatches handles GET /me/matches
// @Summary List the caller's matches
// @Description Match rows joined with their problems, newest first
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max rows, default 200, capped at 500"
// @Success 200 {object} dto.MyMatchesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/matches [get]
func (h *MatchesHandler) MyMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	matches, err := h.ledger.ListUserMatches(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]dto.MyMatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, dto.MyMatchItem{
			Problem: dto.MatchProblem{
				ID:          m.Problem.ID.String(),
				Title:       m.Problem.Title,
				Description: m.Problem.Description,
				Category:    m.Problem.Category,
				Location:    m.Problem.Location,
				CountryCode: m.Problem.CountryCode,
				CreatedAt:   utils.FormatTimestamp(m.Problem.CreatedAt),
			},
			Role:      m.Role,
			CreatedAt: utils.FormatTimestamp(m.CreatedAt),
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MyMatchesResponse{Items: items})
}
