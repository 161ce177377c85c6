package user

import (
	"encoding/json"
	"net/http"

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
	router.Post("/users/register", h.registerUser)
}

// RegisterProtectedRoutes registers the routes that require an authenticated session.
func (h *Handler) RegisterProtectedRoutes(router chi.Router) {
	router.Get("/users/{id}", h.getUser)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		api.Fail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.service.RegisterUser(r.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	api.OK(w, "User registered", user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	api.OK(w, "User fetched", user)
}
