package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/dto"
	"PROBLEMLINK_BACK-END/internal/services"
	"PROBLEMLINK_BACK-END/internal/utils"
)

// ProblemsHandler serves the problem catalog
type ProblemsHandler struct {
	catalog *services.CatalogService
	logger  *zap.Logger
}

// NewProblemsHandler creates a new ProblemsHandler instance
func NewProblemsHandler(catalog *services.CatalogService, logger *zap.Logger) *ProblemsHandler {
	return &ProblemsHandler{catalog: catalog, logger: logger}
}

// ListProblems handles GET /problems with optional filters
// @Summary Search problems
// @Description Up to 200 problems, newest first, each with its collaborator count
// @Tags problems
// @Produce json
// @Param search query string false "substring match on title or description"
// @Param category query string false "exact category"
// @Param location query string false "substring match on location"
// @Param country_code query string false "exact country code"
// @Success 200 {object} dto.ProblemListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems [get]
func (h *ProblemsHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	filters := services.ProblemFilters{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Location:    q.Get("location"),
		CountryCode: q.Get("country_code"),
	}

	problems, err := h.catalog.SearchProblems(r.Context(), filters)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]dto.ProblemResponse, 0, len(problems))
	for _, p := range problems {
		items = append(items, dto.ProblemResponse{
			ID:                p.ID.String(),
			Title:             p.Title,
			Description:       p.Description,
			Category:          p.Category,
			Location:          p.Location,
			CountryCode:       p.CountryCode,
			CollaboratorCount: p.CollaboratorCount,
			CreatedAt:         utils.FormatTimestamp(p.CreatedAt),
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProblemListResponse{Items: items})
}
