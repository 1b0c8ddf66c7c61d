package handlers

import (
	"errors"
	"net/http"

	"github.com/mstolarz/fakturo/auth"
	"github.com/mstolarz/fakturo/httpx"
	"github.com/mstolarz/fakturo/internal/services"
)

type ClientHandler struct {
	svc *services.ClientService
}

func NewClientHandler(svc *services.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// List: GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	clients, err := h.svc.List(userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// Get: GET /clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	client, err := h.svc.Get(userID, r.PathValue("id"))
	if err != nil {
		writeClientError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var in services.ClientInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	res, err := h.svc.Create(userID, in)
	if err != nil {
		writeClientError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, res)
}

// Patch: PATCH /clients/{id}
func (h *ClientHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var patch services.ClientPatch
	if err := httpx.Decode(r, &patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	patch.ID = r.PathValue("id")

	res, err := h.svc.Patch(userID, patch)
	if err != nil {
		writeClientError(w, err)
		return
	}
	// A validation miss is a plain non-success result, still a 200.
	httpx.JSON(w, http.StatusOK, res)
}

// Delete: DELETE /clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	res, err := h.svc.Remove(userID, r.PathValue("id"))
	if err != nil {
		writeClientError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}

func writeClientError(w http.ResponseWriter, err error) {
	var forbidden *services.ForbiddenError
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		httpx.JSONError(w, http.StatusNotFound, "client_not_found", nil)
	case errors.As(err, &forbidden):
		httpx.JSONError(w, http.StatusForbidden, forbidden.Message, nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
