package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthCheck works directly as a chi handler func.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "ok",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
