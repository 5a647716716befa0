package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/harvestroot/storefront/internal/models"
)

// Client fetches catalog data from the upstream REST API. The upstream
// wraps every payload in a {"data": ...} envelope; Client unwraps it and
// normalizes each product (InStock and PriceValue are derived here, once,
// regardless of what the raw payload carries).
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a catalog client for the given base URL, e.g.
// "http://localhost:8000/api/v1".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type productsEnvelope struct {
	Data []models.Product `json:"data"`
}

type productEnvelope struct {
	Data models.Product `json:"data"`
}

type categoriesEnvelope struct {
	Data []models.Category `json:"data"`
}

// Products retrieves the full product collection.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var env productsEnvelope
	if err := c.getJSON(ctx, "/products/", &env); err != nil {
		return nil, err
	}
	for i := range env.Data {
		normalizeProduct(&env.Data[i])
	}
	return env.Data, nil
}

// ProductByID retrieves a single product by its numeric id.
func (c *Client) ProductByID(ctx context.Context, id int) (models.Product, error) {
	var env productEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d/", id), &env); err != nil {
		return models.Product{}, err
	}
	normalizeProduct(&env.Data)
	return env.Data, nil
}

// ProductBySlug retrieves a single product by slug, the canonical lookup
// key for detail pages.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	var env productEnvelope
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(slug)+"/", &env); err != nil {
		return models.Product{}, err
	}
	normalizeProduct(&env.Data)
	return env.Data, nil
}

// Categories retrieves the category collection. No derived fields.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var env categoriesEnvelope
	if err := c.getJSON(ctx, "/products/categories/", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: building request for %s: %v", ErrUpstream, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: GET %s: status=%d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrUpstream, path, err)
	}
	return nil
}

// normalizeProduct derives InStock and PriceValue at the fetch boundary so
// the rest of the service never re-parses the transported price string.
// A price that does not parse yields PriceValue = -1.
func normalizeProduct(p *models.Product) {
	p.InStock = p.Stock > 0
	v, err := strconv.Atoi(p.Price)
	if err != nil {
		zap.L().Warn("product has non-numeric price",
			zap.String("slug", p.Slug), zap.String("price", p.Price))
		v = -1
	}
	p.PriceValue = v
}
