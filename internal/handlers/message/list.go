package message

import (
	"net/http"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/utils"
)

type ListHandler struct {
	Service *service.Service
}

// ServeHTTP handles GET /messages, newest first.
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.ListAllMessages(r.Context())
	if err != nil {
		utils.Empty(w, http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	utils.JSON(w, http.StatusOK, messages)
}
