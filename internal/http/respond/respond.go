// Package respond writes the API's JSON bodies. Every failure surfaces
// as {"error": message, "details": message?} so clients never parse
// free-form text.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Error: message})
}

func ErrorWithDetails(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, errorResponse{Error: message, Details: details})
}
