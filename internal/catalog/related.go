package catalog

import (
	"strings"

	"github.com/harvestroot/storefront/internal/models"
)

// RelatedLimit caps the related-products strip on the detail page.
const RelatedLimit = 4

// FeaturedLimit caps the featured strip on the home page.
const FeaturedLimit = 6

// Related returns products sharing the current product's category
// (case-insensitive), excluding the product itself, in source order.
func Related(products []models.Product, current models.Product) []models.Product {
	related := []models.Product{}
	for _, p := range products {
		if p.Slug == current.Slug || !strings.EqualFold(p.Category, current.Category) {
			continue
		}
		related = append(related, p)
		if len(related) == RelatedLimit {
			break
		}
	}
	return related
}

// Featured returns the leading products shown on the home page.
func Featured(products []models.Product) []models.Product {
	if len(products) > FeaturedLimit {
		return products[:FeaturedLimit]
	}
	return products
}

// BuildFilterMeta derives the filter panel data from the fetched lists:
// availability counts and the observed price range. Products with
// unparseable prices are skipped for the range.
func BuildFilterMeta(products []models.Product, categories []models.Category) models.FilterMeta {
	meta := models.FilterMeta{Categories: categories}
	first := true
	for _, p := range products {
		if p.InStock {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
		if p.PriceValue < 0 {
			continue
		}
		if first || p.PriceValue < meta.PriceRange.Min {
			meta.PriceRange.Min = p.PriceValue
		}
		if first || p.PriceValue > meta.PriceRange.Max {
			meta.PriceRange.Max = p.PriceValue
		}
		first = false
	}
	return meta
}
