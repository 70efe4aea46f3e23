package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chirp/internal/service"
	"chirp/internal/utils"
	"chirp/internal/ws"
)

type UpdateRequest struct {
	MessageText string `json:"message_text"`
}

type UpdateHandler struct {
	Service *service.Service
	Feed    *ws.Hub
}

// ServeHTTP handles PATCH /messages/{id}. Invalid text, an absent id,
// and storage failures all answer 400.
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateMessage(r.Context(), id, req.MessageText)
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	if h.Feed != nil {
		h.Feed.Publish("updated", updated)
	}
	utils.JSON(w, http.StatusOK, updated)
}
