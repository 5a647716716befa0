package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/harvestroot/storefront/internal/catalog"
	api "github.com/harvestroot/storefront/internal/http"
	handler "github.com/harvestroot/storefront/internal/http/handlers"
	rl "github.com/harvestroot/storefront/internal/http/rate_limiter"
	"github.com/harvestroot/storefront/internal/models"
)

// rawProduct mirrors the upstream wire shape: no derived fields, price as
// a string.
type rawProduct struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Slug        string   `json:"slug"`
}

func raw(id int, title, price, category string, stock int) rawProduct {
	return rawProduct{
		ID:          id,
		Title:       title,
		Description: "about " + title,
		Price:       price,
		Category:    category,
		Stock:       stock,
		Slug:        strings.ToLower(strings.ReplaceAll(title, " ", "-")),
	}
}

type upstream struct {
	products   []rawProduct
	categories []models.Category
	listCalls  int
	failing    bool
}

func (u *upstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u.failing {
			http.Error(w, "upstream down", http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/products/":
			u.listCalls++
			writeData(w, u.products)
		case "/products/categories/":
			writeData(w, u.categories)
		default:
			key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/products/"), "/")
			for _, p := range u.products {
				if p.Slug == key || strconv.Itoa(p.ID) == key {
					writeData(w, p)
					return
				}
			}
			http.NotFound(w, r)
		}
	})
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": v})
}

// newStorefront wires the full stack (client -> cache -> handlers ->
// router) against a stub upstream and returns the router under test.
func newStorefront(t *testing.T, u *upstream) http.Handler {
	t.Helper()

	rl.CleanupAllVisitors()
	rl.Configure(1000, 1000)

	srv := httptest.NewServer(u.handler())
	t.Cleanup(srv.Close)

	client := catalog.NewClient(srv.URL, 2*time.Second)
	handler.SetCatalog(catalog.NewCachedCatalog(client, catalog.NewMemoryStore(catalog.DefaultCacheTTL)))
	return api.NewRouter()
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSearchResult(t *testing.T, w *httptest.ResponseRecorder) handler.ProductsSearchResult {
	t.Helper()
	var resp handler.ProductsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}
