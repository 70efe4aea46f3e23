package account

import (
	"encoding/json"
	"net/http"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/utils"
)

type RegisterHandler struct {
	Service *service.Service
}

// ServeHTTP handles POST /register. Invalid input, a duplicate
// username, and storage failures all answer 400 with an empty body.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.Account
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	created, err := h.Service.Register(r.Context(), req)
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	utils.JSON(w, http.StatusOK, created)
}
