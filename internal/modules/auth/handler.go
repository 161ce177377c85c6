package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/login", h.login)
	router.Get("/auth/validate", h.validateToken)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInactiveAccount):
			api.Fail(w, http.StatusBadRequest, "User account is inactive")
		case errors.Is(err, ErrInvalidCredentials):
			api.Fail(w, http.StatusBadRequest, "Invalid credentials")
		default:
			api.Fail(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	api.OK(w, "Login successful", result)
}

func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		api.Fail(w, http.StatusBadRequest, "Invalid token format")
		return
	}

	if _, err := h.service.Validate(strings.TrimPrefix(header, "Bearer ")); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid or expired token")
		return
	}

	api.OK(w, "Token is valid", nil)
}
