package handlers

import "github.com/harvestroot/storefront/internal/models"

type ProductResponse struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	PriceValue  int      `json:"price_value"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	InStock     bool     `json:"in_stock"`
	Slug        string   `json:"slug"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page,omitempty"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type ProductDetailResult struct {
	Data    ProductResponse   `json:"data"`
	Related []ProductResponse `json:"related"`
}

type FeaturedProductsResult struct {
	Data []ProductResponse `json:"data"`
}

type CategoriesResult struct {
	Data []models.Category `json:"data"`
}

type FilterMetaResult struct {
	Data models.FilterMeta `json:"data"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		PriceValue:  p.PriceValue,
		Category:    p.Category,
		Images:      p.Images,
		Stock:       p.Stock,
		InStock:     p.InStock,
		Slug:        p.Slug,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
