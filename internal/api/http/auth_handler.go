package http

import (
	"errors"
	"net/http"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

type createUserRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Roles    []domain.Role `json:"roles"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, expiresAt, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, loginResponse{AccessToken: token, ExpiresAt: expiresAt, User: user})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.auth.CreateUser(r.Context(), req.Email, req.Password, req.Roles)
	if err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		logger.InfoContext(r.Context(), "User account created", "userID", user.ID, "createdBy", claims.UserID)
	}
	respondWithJSON(w, http.StatusCreated, user)
}
