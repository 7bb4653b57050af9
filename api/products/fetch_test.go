package products

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rosea_server/services"
	"rosea_server/storage"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() chi.Router {
	logger := gecho.NewDefaultLogger()
	catalogService := services.NewCatalogService(logger, storage.NewMemoryStore())

	r := chi.NewRouter()
	NewProductRoutesManager(logger, catalogService).RegisterRoutes(r)
	return r
}

func TestFetchProducts(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestFetchProductsRejectsUnknownSort(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/products?sort=alphabetical", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFetchProductByID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/999", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFetchCategories(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}
