package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harvestroot/storefront/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(RateLimit)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/featured", handlers.GetFeaturedProductsHandler)
	r.Get("/products/{slug}", handlers.GetProductBySlugHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/filters/meta", handlers.GetFilterMetaHandler)
	return r
}
