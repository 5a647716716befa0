package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/harvestroot/storefront/internal/catalog"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeCatalogError maps catalog errors onto HTTP statuses: not-found is
// distinct so the client can render its own state; everything else is a
// generic upstream failure the client may retry.
func writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	http.Error(w, "could not fetch catalog data", http.StatusBadGateway)
}
