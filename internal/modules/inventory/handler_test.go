package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/autandojam/inventory-backend/internal/modules/auth"
	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(svc Service, actor *user.User) *chi.Mux {
	router := chi.NewRouter()
	if actor != nil {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), actor)))
			})
		})
	}
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var resp api.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_GetItem_NotFound(t *testing.T) {
	svc, _, _, actor := testFixture()
	router := testRouter(svc, actor)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Item not found", resp.Message)
}

func TestHandler_CreateAndFetchItem(t *testing.T) {
	svc, _, _, actor := testFixture()
	router := testRouter(svc, actor)

	body := `{"name":"Widget","category_id":"` + uuid.New().String() + `","quantity":4,"unit_price":3.5}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item created", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "14", data["total_value"])
}

func TestHandler_CreateItem_WithoutUser(t *testing.T) {
	svc, _, _, _ := testFixture()
	router := testRouter(svc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "User not found", resp.Message)
}

func TestHandler_ReduceStock_Insufficient(t *testing.T) {
	svc, _, _, actor := testFixture()
	router := testRouter(svc, actor)

	req := createRequest()
	req.Quantity = 5
	item, err := svc.CreateItem(context.Background(), req, actor, "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/items/"+item.ID.String()+"/reduce-stock?quantity=10", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Insufficient stock", resp.Message)
}

func TestHandler_AddStock_MissingQuantity(t *testing.T) {
	svc, _, _, actor := testFixture()
	router := testRouter(svc, actor)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/items/"+uuid.New().String()+"/add-stock", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}
