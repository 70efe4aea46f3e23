package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/utils"
)

type LoginHandler struct {
	Service *service.Service
}

// ServeHTTP handles POST /login. Success returns the matching account
// record; there is no token or session state.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.Account
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	acc, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrAuthenticationFailed) {
		utils.Empty(w, http.StatusUnauthorized)
		return
	}
	if err != nil {
		utils.Empty(w, http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, acc)
}
