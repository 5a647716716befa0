package models

// Product represents a catalog product as served by the upstream API,
// plus the fields derived at fetch time (InStock, PriceValue).
type Product struct {
	ID          int      `json:"id"`
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
