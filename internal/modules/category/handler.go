package category

import (
	"encoding/json"
	"net/http"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/go-chi/chi/v5"
)

// Handler exposes category HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Get("/{id}", h.getCategory)
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Categories fetched", categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		api.Fail(w, http.StatusBadRequest, "Category name is required")
		return
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Category created", c)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Category not found")
		return
	}
	api.OK(w, "Category fetched", c)
}
