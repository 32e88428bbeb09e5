package utils

import (
	"encoding/json"
	"net/http"

	"PROBLEMLINK_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errType, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error:   errType,
		Message: message,
	})
}
