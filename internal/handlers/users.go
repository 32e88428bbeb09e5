package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/dto"
	"PROBLEMLINK_BACK-END/internal/services"
	"PROBLEMLINK_BACK-END/internal/utils"
)

// UsersHandler serves the user directory
type UsersHandler struct {
	directory *services.DirectoryService
	logger    *zap.Logger
}

// NewUsersHandler creates a new UsersHandler instance
func NewUsersHandler(directory *services.DirectoryService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{directory: directory, logger: logger}
}

// ListUsers handles GET /users
// @Summary List registered users
// @Description Up to 500 users, newest first
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.directory.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserListResponse{Items: items})
}
