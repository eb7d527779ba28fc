package middleware

import (
	"encoding/json"
	"net/http"
)

// errorResponse mirrors the handler package's Response for failures raised
// before a request reaches a handler.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func writeError(w http.ResponseWriter, code int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Message: message,
		Detail:  detail,
	})
}
