package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"PROBLEMLINK_BACK-END/internal/services"
	"PROBLEMLINK_BACK-END/internal/utils"
)

// writeServiceError maps a service error kind to an HTTP status.
// Store failures surface the store's message; anything unclassified
// gets a generic 500 and a server-side log line.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindValidation:
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", svcErr.Message)
		case services.KindAuth:
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", svcErr.Message)
		case services.KindNotFound:
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", svcErr.Message)
		case services.KindStore:
			logger.Error("store query failed", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", svcErr.Message)
		case services.KindInternal:
			logger.Error("internal error", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "unexpected error")
		default:
			logger.Error("unclassified service error", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "unexpected error")
		}
		return
	}

	logger.Error("unhandled error", zap.Error(err))
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "unexpected error")
}
