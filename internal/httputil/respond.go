package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard API response shape.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope with data.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Error writes a failure envelope with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Error: msg})
}

// Fail writes a failure envelope with HTTP 200. Used where the client treats
// the condition as data rather than a transport error (unused slugs, upstream
// notification failures).
func Fail(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, Envelope{Success: false, Error: msg})
}
