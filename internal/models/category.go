package models

// Category is a product grouping used for filter options and navigation.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
