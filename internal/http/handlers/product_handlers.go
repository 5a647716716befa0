package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/harvestroot/storefront/internal/catalog"
	"github.com/harvestroot/storefront/internal/models"
)

// GetProductsHandler godoc
// @Summary List catalog products
// @Description Filtered, sorted and paginated product listing
// @Tags products
// @Produce json
// @Param category query string false "Category (case-insensitive)"
// @Param search query string false "Title substring"
// @Param desc query string false "Description substring"
// @Param price_range query string false "Inclusive price range, <min>-<max>"
// @Param in_stock query string false "Set to 'true' to exclude out-of-stock items"
// @Param sort query string false "price-asc | price-desc | name-asc | name-desc"
// @Param page query int false "1-based page number"
// @Success 200 {object} ProductsSearchResult
// @Failure 502 {string} string "Upstream error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := catalog.QueryFromValues(r.URL.Query())

	products, err := catalogSvc.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	page := query.Apply(products)
	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: toProductResponses(page.Items),
		Meta: Meta{TotalCount: page.Total, TotalPages: page.TotalPages, Page: page.Page},
	})
}

// GetFeaturedProductsHandler godoc
// @Summary Featured products for the home page
// @Tags products
// @Produce json
// @Success 200 {object} FeaturedProductsResult
// @Failure 502 {string} string "Upstream error"
// @Router /products/featured [get]
func GetFeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogSvc.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FeaturedProductsResult{
		Data: toProductResponses(catalog.Featured(products)),
	})
}

// GetProductBySlugHandler godoc
// @Summary Get product details
// @Description Product detail with up to four related products from the same category
// @Tags products
// @Produce json
// @Param slug path string true "Product slug (or numeric id)"
// @Success 200 {object} ProductDetailResult
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Upstream error"
// @Router /products/{slug} [get]
func GetProductBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var (
		product models.Product
		err     error
	)
	if id, convErr := strconv.Atoi(slug); convErr == nil {
		product, err = catalogSvc.ProductByID(r.Context(), id)
	} else {
		product, err = catalogSvc.ProductBySlug(r.Context(), slug)
	}
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	// The related strip is best-effort: a failed list fetch degrades to
	// an empty strip rather than failing the whole detail response.
	related := []models.Product{}
	if products, listErr := catalogSvc.Products(r.Context()); listErr == nil {
		related = catalog.Related(products, product)
	} else {
		zap.L().Warn("could not load related products", zap.String("slug", slug), zap.Error(listErr))
	}

	writeJSON(w, http.StatusOK, ProductDetailResult{
		Data:    toProductResponse(product),
		Related: toProductResponses(related),
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
