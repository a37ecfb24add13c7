package http

import (
	"net/http"

	"toolrent-backend/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, clients)
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := decodeJSON(r, &client); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.clients.Create(r.Context(), &client); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusCreated, client)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := decodeJSON(r, &client); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	client.ID = mux.Vars(r)["id"]
	if err := h.clients.Update(r.Context(), &client); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
