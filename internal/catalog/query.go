package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/harvestroot/storefront/internal/models"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 12

// Query holds the filter, sort and pagination state for one catalog view.
// It is parsed once from the URL query string and treated as immutable
// input to Apply; price bounds stay strings because bounds that do not
// parse disable the range stage instead of failing.
type Query struct {
	Category string
	Search   string
	Desc     string
	PriceMin string
	PriceMax string
	InStock  bool
	Sort     string
	Page     int
}

// Page is one rendered slice of the filtered, sorted product list.
type Page struct {
	Items      []models.Product
	Total      int
	TotalPages int
	Page       int
}

// QueryFromValues parses the storefront query parameters: category, search,
// desc, price_range ("<min>-<max>"), in_stock ("true"), sort, page.
func QueryFromValues(v url.Values) Query {
	q := Query{
		Category: v.Get("category"),
		Search:   v.Get("search"),
		Desc:     v.Get("desc"),
		InStock:  v.Get("in_stock") == "true",
		Sort:     v.Get("sort"),
		Page:     1,
	}
	if pr := v.Get("price_range"); pr != "" {
		parts := strings.SplitN(pr, "-", 2)
		q.PriceMin = parts[0]
		if len(parts) == 2 {
			q.PriceMax = parts[1]
		}
	}
	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	return q
}

// Apply runs the fixed filter -> sort -> paginate pipeline over the full
// product list. The input slice is never mutated; every invocation
// allocates, so the fetched list can be reused across calls.
func (q Query) Apply(products []models.Product) Page {
	min, max, boundsOK := q.priceBounds()

	var filtered []models.Product
	for _, p := range products {
		if q.matches(p, min, max, boundsOK) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	start := (q.Page - 1) * PageSize
	if start >= total {
		// Pages past the end yield an empty slice; clamping navigation
		// is the caller's concern.
		return Page{Items: []models.Product{}, Total: total, TotalPages: totalPages, Page: q.Page}
	}
	end := start + PageSize
	if end > total {
		end = total
	}
	return Page{Items: filtered[start:end], Total: total, TotalPages: totalPages, Page: q.Page}
}

// priceBounds parses the range bounds. The range stage only applies when
// both bounds are valid numbers.
func (q Query) priceBounds() (min, max int, ok bool) {
	if q.PriceMin == "" || q.PriceMax == "" {
		return 0, 0, false
	}
	min, errMin := strconv.Atoi(q.PriceMin)
	max, errMax := strconv.Atoi(q.PriceMax)
	if errMin != nil || errMax != nil {
		return 0, 0, false
	}
	return min, max, true
}

func (q Query) matches(p models.Product, min, max int, boundsOK bool) bool {
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(q.Search)) {
		return false
	}
	if q.Desc != "" && !strings.Contains(strings.ToLower(p.Description), strings.ToLower(q.Desc)) {
		return false
	}
	if boundsOK && (p.PriceValue < min || p.PriceValue > max) {
		return false
	}
	if q.InStock && !p.InStock {
		return false
	}
	return true
}

// sortProducts reorders in place. Empty or unrecognized keys leave the
// list in source order. Name comparison is locale-aware.
func sortProducts(products []models.Product, key string) {
	switch key {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceValue < products[j].PriceValue
		})
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceValue > products[j].PriceValue
		})
	case "name-asc", "name-desc":
		col := collate.New(language.English)
		desc := key == "name-desc"
		sort.SliceStable(products, func(i, j int) bool {
			cmp := col.CompareString(products[i].Title, products[j].Title)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
}
