package handlers

import (
	"github.com/harvestroot/storefront/internal/catalog"
)

var catalogSvc catalog.Catalog

func SetCatalog(c catalog.Catalog) {
	catalogSvc = c
}
