package utils

import (
	"encoding/json"
	"net/http"

	"PROFILEHUB_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the error envelope used across the API: a human
// message plus a machine-readable code.
func WriteErrorResponse(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message, Code: code})
}
