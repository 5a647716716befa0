package catalog

import (
	"context"

	"github.com/harvestroot/storefront/internal/models"
)

// Catalog defines the read operations the storefront needs from the
// upstream product API. Client implements it against the network;
// CachedCatalog decorates any implementation with a TTL cache.
type Catalog interface {
	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id int) (models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}
