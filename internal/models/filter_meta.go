package models

// FilterMeta aggregates the data the storefront filter panel is built from.
type FilterMeta struct {
	Availability AvailabilityData `json:"availability"`
	Categories   []Category       `json:"categories"`
	PriceRange   PriceRangeData   `json:"price_range"`
}

// AvailabilityData holds product availability counts.
type AvailabilityData struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// PriceRangeData holds the minimum and maximum price across the catalog.
type PriceRangeData struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
