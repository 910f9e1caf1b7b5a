package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DecodeJSON decodes the request body into v. On failure it writes the
// error response and returns false: 413 when the body exceeds the limit
// set by http.MaxBytesReader, 400 for anything else.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
