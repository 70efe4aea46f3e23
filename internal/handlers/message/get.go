package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chirp/internal/service"
	"chirp/internal/utils"
)

type GetHandler struct {
	Service *service.Service
}

// ServeHTTP handles GET /messages/{id}. An absent id is not an error:
// it answers 200 with an empty body.
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Empty(w, http.StatusBadRequest)
		return
	}

	msg, err := h.Service.GetMessageByID(r.Context(), id)
	if err != nil {
		utils.Empty(w, http.StatusInternalServerError)
		return
	}
	if msg == nil {
		utils.Empty(w, http.StatusOK)
		return
	}
	utils.JSON(w, http.StatusOK, msg)
}
