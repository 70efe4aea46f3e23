package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the JSON response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Empty writes a bare status code with no body. Error outcomes and
// absent lookups respond this way.
func Empty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
