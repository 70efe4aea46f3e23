package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/utils"
)

type ByUserHandler struct {
	Service *service.Service
}

// ServeHTTP handles GET /accounts/{userId}/messages, newest first. An
// unknown user simply has no messages.
func (h *ByUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	messages, err := h.Service.ListMessagesForUser(r.Context(), userID)
	if err != nil {
		utils.Empty(w, http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	utils.JSON(w, http.StatusOK, messages)
}
