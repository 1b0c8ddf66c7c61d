package handlers

import (
	"net/http"

	"github.com/mstolarz/fakturo/auth"
	"github.com/mstolarz/fakturo/httpx"
	"github.com/mstolarz/fakturo/internal/services"
)

type HistoryHandler struct {
	svc *services.HistoryService
}

func NewHistoryHandler(svc *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List: GET /history – the user's audit trail, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	entries, err := h.svc.List(userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_history", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, entries)
}
