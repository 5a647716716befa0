package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/harvestroot/storefront/internal/models"
)

func prod(title, price, category string, stock int) models.Product {
	value, err := strconv.Atoi(price)
	if err != nil {
		value = -1
	}
	return models.Product{
		Title:       title,
		Description: "about " + title,
		Price:       price,
		PriceValue:  value,
		Category:    category,
		Stock:       stock,
		InStock:     stock > 0,
		Slug:        strings.ToLower(strings.ReplaceAll(title, " ", "-")),
	}
}

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestApply_StockFilterThenPriceSort(t *testing.T) {
	products := []models.Product{
		prod("Honey A", "5000", "Honey", 2),
		prod("Herb B", "3000", "Herbs", 0),
	}

	page := Query{InStock: true, Sort: "price-asc", Page: 1}.Apply(products)

	if len(page.Items) != 1 || page.Items[0].Title != "Honey A" {
		t.Fatalf("expected single item 'Honey A', got %v", titles(page.Items))
	}
	if page.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", page.TotalPages)
	}
}

func TestApply_SecondPageHoldsRemainder(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 13; i++ {
		products = append(products, prod(fmt.Sprintf("Item %02d", i), "100", "Honey", 1))
	}

	page := Query{Page: 2}.Apply(products)

	if len(page.Items) != 1 || page.Items[0].Title != "Item 13" {
		t.Fatalf("expected page 2 to hold only 'Item 13', got %v", titles(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", page.TotalPages)
	}
	if page.Total != 13 {
		t.Errorf("expected total 13, got %d", page.Total)
	}
}

func TestApply_PageBeyondTotalYieldsEmptySlice(t *testing.T) {
	products := []models.Product{prod("Honey A", "5000", "Honey", 2)}

	page := Query{Page: 7}.Apply(products)

	if len(page.Items) != 0 {
		t.Errorf("expected empty page, got %v", titles(page.Items))
	}
	if page.TotalPages != 1 {
		t.Errorf("expected total pages unchanged at 1, got %d", page.TotalPages)
	}
}

func TestApply_EmptyResultHasZeroTotalPages(t *testing.T) {
	products := []models.Product{prod("Honey A", "5000", "Honey", 0)}

	page := Query{InStock: true, Page: 1}.Apply(products)

	if len(page.Items) != 0 || page.TotalPages != 0 || page.Total != 0 {
		t.Errorf("expected empty page with 0 total pages, got items=%v totalPages=%d",
			titles(page.Items), page.TotalPages)
	}
}

func TestApply_UnparseableBoundDisablesRangeStage(t *testing.T) {
	products := []models.Product{
		prod("Honey A", "5000", "Honey", 2),
		prod("Honey B", "90000", "Honey", 2),
	}

	page := Query{PriceMin: "abc", PriceMax: "5000", Page: 1}.Apply(products)

	if len(page.Items) != 2 {
		t.Errorf("expected range stage to be a no-op, got %v", titles(page.Items))
	}
}

func TestApply_PriceRangeIsInclusive(t *testing.T) {
	products := []models.Product{
		prod("Low", "1000", "Honey", 1),
		prod("Mid", "3000", "Honey", 1),
		prod("High", "5000", "Honey", 1),
		prod("Over", "5001", "Honey", 1),
	}

	page := Query{PriceMin: "1000", PriceMax: "5000", Page: 1}.Apply(products)

	got := titles(page.Items)
	want := []string{"Low", "Mid", "High"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestApply_CategoryMatchIsCaseInsensitive(t *testing.T) {
	products := []models.Product{
		prod("Honey A", "5000", "Honey", 2),
		prod("Herb B", "3000", "Herbs", 1),
	}

	page := Query{Category: "hOnEy", Page: 1}.Apply(products)

	if len(page.Items) != 1 || page.Items[0].Title != "Honey A" {
		t.Errorf("expected case-insensitive category match, got %v", titles(page.Items))
	}
}

func TestApply_TitleAndDescriptionSubstrings(t *testing.T) {
	products := []models.Product{
		prod("Wildflower Honey", "5000", "Honey", 2),
		prod("Clover Honey", "4000", "Honey", 2),
		prod("Basil", "2000", "Herbs", 2),
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"title substring", Query{Search: "wildflower", Page: 1}, []string{"Wildflower Honey"}},
		{"description substring", Query{Desc: "CLOVER", Page: 1}, []string{"Clover Honey"}},
		{"no match", Query{Search: "lavender", Page: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(tt.query.Apply(products).Items)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestApply_additionalFilterNeverGrowsResult(t *testing.T) {
	products := []models.Product{
		prod("Wildflower Honey", "5000", "Honey", 2),
		prod("Clover Honey", "4000", "Honey", 0),
		prod("Basil", "2000", "Herbs", 2),
	}

	base := Query{Category: "Honey", Page: 1}.Apply(products)
	narrowed := Query{Category: "Honey", InStock: true, Page: 1}.Apply(products)

	if narrowed.Total > base.Total {
		t.Errorf("narrowed result (%d) larger than base result (%d)", narrowed.Total, base.Total)
	}
	for _, p := range narrowed.Items {
		found := false
		for _, q := range base.Items {
			if q.Slug == p.Slug {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("narrowed result contains %q which the base result lacks", p.Title)
		}
	}
}

func TestApply_SortOrders(t *testing.T) {
	products := []models.Product{
		prod("Cinnamon", "3000", "Spices", 1),
		prod("Anise", "5000", "Spices", 1),
		prod("Basil", "1000", "Herbs", 1),
		prod("Dill", "3000", "Herbs", 1),
	}

	t.Run("price-asc", func(t *testing.T) {
		items := Query{Sort: "price-asc", Page: 1}.Apply(products).Items
		for i := 1; i < len(items); i++ {
			if items[i-1].PriceValue > items[i].PriceValue {
				t.Fatalf("prices out of order: %v", titles(items))
			}
		}
		// Stable: Cinnamon precedes Dill at equal price.
		if items[1].Title != "Cinnamon" || items[2].Title != "Dill" {
			t.Errorf("expected stable order for equal prices, got %v", titles(items))
		}
	})

	t.Run("price-desc", func(t *testing.T) {
		items := Query{Sort: "price-desc", Page: 1}.Apply(products).Items
		for i := 1; i < len(items); i++ {
			if items[i-1].PriceValue < items[i].PriceValue {
				t.Fatalf("prices out of order: %v", titles(items))
			}
		}
	})

	t.Run("name-asc", func(t *testing.T) {
		got := titles(Query{Sort: "name-asc", Page: 1}.Apply(products).Items)
		want := []string{"Anise", "Basil", "Cinnamon", "Dill"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("name-desc", func(t *testing.T) {
		got := titles(Query{Sort: "name-desc", Page: 1}.Apply(products).Items)
		want := []string{"Dill", "Cinnamon", "Basil", "Anise"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("unrecognized sort keeps source order", func(t *testing.T) {
		got := titles(Query{Sort: "rating-desc", Page: 1}.Apply(products).Items)
		want := []string{"Cinnamon", "Anise", "Basil", "Dill"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})
}

func TestApply_PagesConcatenateToFullList(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 30; i++ {
		products = append(products, prod(fmt.Sprintf("Item %02d", i), strconv.Itoa(100*i), "Honey", 1))
	}

	q := Query{Sort: "price-desc"}
	seen := make(map[string]int)
	var concatenated []models.Product
	totalPages := (len(products) + PageSize - 1) / PageSize
	for page := 1; page <= totalPages; page++ {
		q.Page = page
		result := q.Apply(products)
		concatenated = append(concatenated, result.Items...)
		for _, p := range result.Items {
			seen[p.Slug]++
		}
	}

	if len(concatenated) != len(products) {
		t.Fatalf("expected %d items across pages, got %d", len(products), len(concatenated))
	}
	for slug, count := range seen {
		if count != 1 {
			t.Errorf("item %q appeared %d times", slug, count)
		}
	}
	for i := 1; i < len(concatenated); i++ {
		if concatenated[i-1].PriceValue < concatenated[i].PriceValue {
			t.Fatalf("concatenated pages out of sort order at index %d", i)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		prod("Cinnamon", "3000", "Spices", 1),
		prod("Anise", "5000", "Spices", 1),
		prod("Basil", "1000", "Herbs", 1),
	}
	before := titles(products)

	Query{Sort: "name-asc", Page: 1}.Apply(products)

	after := titles(products)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input list mutated: before=%v after=%v", before, after)
		}
	}
}

func TestQueryFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("category", "Honey")
	v.Set("search", "wild")
	v.Set("desc", "raw")
	v.Set("price_range", "1000-5000")
	v.Set("in_stock", "true")
	v.Set("sort", "price-asc")
	v.Set("page", "3")

	q := QueryFromValues(v)

	want := Query{
		Category: "Honey", Search: "wild", Desc: "raw",
		PriceMin: "1000", PriceMax: "5000",
		InStock: true, Sort: "price-asc", Page: 3,
	}
	if q != want {
		t.Errorf("expected %+v, got %+v", want, q)
	}
}

func TestQueryFromValues_Defaults(t *testing.T) {
	q := QueryFromValues(url.Values{})

	if q.Page != 1 {
		t.Errorf("expected default page 1, got %d", q.Page)
	}
	if q.InStock {
		t.Error("expected in-stock filter off by default")
	}
	if q.PriceMin != "" || q.PriceMax != "" {
		t.Errorf("expected empty price bounds, got %q / %q", q.PriceMin, q.PriceMax)
	}
}

func TestQueryFromValues_BadPageFallsBackToFirst(t *testing.T) {
	for _, raw := range []string{"0", "-2", "abc"} {
		v := url.Values{}
		v.Set("page", raw)
		if q := QueryFromValues(v); q.Page != 1 {
			t.Errorf("page=%q: expected fallback to 1, got %d", raw, q.Page)
		}
	}
}
