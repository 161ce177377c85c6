package activity

import (
	"net/http"
	"strconv"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/go-chi/chi/v5"
)

// Handler exposes audit review endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/activity", h.listActivity)
}

func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 10)

	if userID := r.URL.Query().Get("user"); userID != "" {
		result, err := h.service.ListByUser(r.Context(), userID, page, size)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		api.OK(w, "Activity fetched", result)
		return
	}

	action := r.URL.Query().Get("action")
	if action == "" {
		api.Fail(w, http.StatusBadRequest, "Either user or action filter is required")
		return
	}
	result, err := h.service.ListByAction(r.Context(), action, page, size)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Activity fetched", result)
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
