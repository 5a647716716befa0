package handlers

import (
	"net/http"

	"github.com/harvestroot/storefront/internal/catalog"
)

// GetCategoriesHandler godoc
// @Summary List product categories
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResult
// @Failure 502 {string} string "Upstream error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := catalogSvc.Categories(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoriesResult{Data: categories})
}

// GetFilterMetaHandler godoc
// @Summary Filter panel metadata
// @Description Availability counts, categories and catalog price range
// @Tags categories
// @Produce json
// @Success 200 {object} FilterMetaResult
// @Failure 502 {string} string "Upstream error"
// @Router /filters/meta [get]
func GetFilterMetaHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogSvc.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	categories, err := catalogSvc.Categories(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FilterMetaResult{Data: catalog.BuildFilterMeta(products, categories)})
}
