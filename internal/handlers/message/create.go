package message

import (
	"encoding/json"
	"net/http"

	"chirp/internal/models"
	"chirp/internal/service"
	"chirp/internal/utils"
	"chirp/internal/ws"
)

type CreateHandler struct {
	Service *service.Service
	Feed    *ws.Hub
}

// ServeHTTP handles POST /messages. Blank or oversized text, an
// unknown poster, and storage failures all answer 400.
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.Message
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateMessage(r.Context(), req)
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	if h.Feed != nil {
		h.Feed.Publish("created", created)
	}
	utils.JSON(w, http.StatusOK, created)
}
