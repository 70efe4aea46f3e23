package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chirp/internal/service"
	"chirp/internal/utils"
	"chirp/internal/ws"
)

type DeleteHandler struct {
	Service *service.Service
	Feed    *ws.Hub
}

// ServeHTTP handles DELETE /messages/{id}. Deleting an absent id is a
// no-op and answers 200 with an empty body, same as get.
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	msg, err := h.Service.DeleteMessageByID(r.Context(), id)
	if err != nil {
		utils.Empty(w, http.StatusInternalServerError)
		return
	}
	if msg == nil {
		utils.Empty(w, http.StatusOK)
		return
	}

	if h.Feed != nil {
		h.Feed.Publish("deleted", msg)
	}
	utils.JSON(w, http.StatusOK, msg)
}
