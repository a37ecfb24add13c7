package http

import (
	"net/http"

	"toolrent-backend/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, tools)
}

func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.tools.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, tool)
}

func (h *Handler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var tool domain.Tool
	if err := decodeJSON(r, &tool); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.tools.Create(r.Context(), &tool); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusCreated, tool)
}

func (h *Handler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	var tool domain.Tool
	if err := decodeJSON(r, &tool); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tool.ID = mux.Vars(r)["id"]
	if err := h.tools.Update(r.Context(), &tool); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusOK, tool)
}

func (h *Handler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.tools.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
