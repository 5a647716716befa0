package catalog

import (
	"fmt"
	"testing"

	"github.com/harvestroot/storefront/internal/models"
)

func TestRelated_SameCategoryExcludingCurrent(t *testing.T) {
	current := prod("Wildflower Honey", "5000", "Honey", 2)
	products := []models.Product{
		current,
		prod("Clover Honey", "4000", "honey", 1), // case differs, still related
		prod("Basil", "2000", "Herbs", 1),
		prod("Acacia Honey", "6000", "Honey", 0),
	}

	related := Related(products, current)

	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %v", titles(related))
	}
	for _, p := range related {
		if p.Slug == current.Slug {
			t.Error("related list contains the current product")
		}
	}
	if related[0].Title != "Clover Honey" || related[1].Title != "Acacia Honey" {
		t.Errorf("expected source order preserved, got %v", titles(related))
	}
}

func TestRelated_TruncatesToLimit(t *testing.T) {
	current := prod("Honey 0", "1000", "Honey", 1)
	products := []models.Product{current}
	for i := 1; i <= 7; i++ {
		products = append(products, prod(fmt.Sprintf("Honey %d", i), "1000", "Honey", 1))
	}

	related := Related(products, current)

	if len(related) != RelatedLimit {
		t.Errorf("expected %d related products, got %d", RelatedLimit, len(related))
	}
}

func TestFeatured_TakesLeadingProducts(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 8; i++ {
		products = append(products, prod(fmt.Sprintf("Item %d", i), "1000", "Honey", 1))
	}

	featured := Featured(products)

	if len(featured) != FeaturedLimit {
		t.Fatalf("expected %d featured products, got %d", FeaturedLimit, len(featured))
	}
	if featured[0].Title != "Item 1" || featured[5].Title != "Item 6" {
		t.Errorf("expected leading products in source order, got %v", titles(featured))
	}

	short := products[:3]
	if got := Featured(short); len(got) != 3 {
		t.Errorf("expected short lists returned whole, got %d items", len(got))
	}
}

func TestBuildFilterMeta(t *testing.T) {
	products := []models.Product{
		prod("Honey A", "5000", "Honey", 2),
		prod("Herb B", "3000", "Herbs", 0),
		prod("Odd", "n/a", "Herbs", 1), // unparseable price ignored for the range
	}
	categories := []models.Category{{ID: 1, Name: "Honey"}, {ID: 2, Name: "Herbs"}}

	meta := BuildFilterMeta(products, categories)

	if meta.Availability.InStock != 2 || meta.Availability.OutOfStock != 1 {
		t.Errorf("unexpected availability: %+v", meta.Availability)
	}
	if meta.PriceRange.Min != 3000 || meta.PriceRange.Max != 5000 {
		t.Errorf("unexpected price range: %+v", meta.PriceRange)
	}
	if len(meta.Categories) != 2 {
		t.Errorf("expected categories passed through, got %+v", meta.Categories)
	}
}
