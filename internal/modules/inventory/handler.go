package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/autandojam/inventory-backend/internal/modules/auth"
	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints. All routes require an
// authenticated session; the acting user comes from the auth middleware.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.getAllItems)
		r.Post("/", h.createItem)
		r.Get("/search", h.searchItems)
		r.Get("/low-stock", h.getLowStockItems)
		r.Get("/category/{categoryId}", h.getItemsByCategory)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getItem)
			r.Put("/", h.updateItem)
			r.Delete("/", h.deleteItem)
			r.Get("/transactions", h.getItemTransactions)
			r.Post("/add-stock", h.addStock)
			r.Post("/reduce-stock", h.reduceStock)
		})
	})
}

func (h *Handler) getAllItems(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	items, err := h.service.GetItems(r.Context(), page, size)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Items fetched", items)
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	items, err := h.service.SearchItems(r.Context(), r.URL.Query().Get("query"), page, size)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Search completed", items)
}

func (h *Handler) getItemsByCategory(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	items, err := h.service.GetItemsByCategory(r.Context(), chi.URLParam(r, "categoryId"), page, size)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Items fetched", items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, "Item fetched", item)
}

func (h *Handler) getLowStockItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStockItems(r.Context())
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.OK(w, "Low stock items fetched", items)
}

func (h *Handler) getItemTransactions(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	txns, err := h.service.ItemTransactions(r.Context(), chi.URLParam(r, "id"), page, size)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, "Transactions fetched", txns)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.CreateItem(r.Context(), req, actor, clientIP(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, "Item created", item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "id"), req, actor, clientIP(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, "Item updated", item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(r.Context(), chi.URLParam(r, "id"), actor, clientIP(r)); err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, "Item deleted", nil)
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.service.AddStock, "Stock added")
}

func (h *Handler) reduceStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.service.ReduceStock, "Stock reduced")
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request,
	op func(context.Context, string, int, string, string, *user.User, string) error, message string) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "quantity must be an integer")
		return
	}
	reference := r.URL.Query().Get("reference")
	notes := r.URL.Query().Get("notes")

	if err := op(r.Context(), chi.URLParam(r, "id"), quantity, reference, notes, actor, clientIP(r)); err != nil {
		h.fail(w, err)
		return
	}
	api.OK(w, message, nil)
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		api.Fail(w, http.StatusBadRequest, "User not found")
		return nil, false
	}
	return actor, true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		api.Fail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, ErrInsufficientStock):
		api.Fail(w, http.StatusBadRequest, "Insufficient stock")
	default:
		api.Fail(w, http.StatusBadRequest, err.Error())
	}
}

func pageParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}
	return page, size
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
