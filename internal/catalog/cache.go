package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harvestroot/storefront/internal/models"
)

// DefaultCacheTTL is how long a cached upstream response stays valid.
const DefaultCacheTTL = 5 * time.Minute

// Store is the backing storage for cached upstream responses. An entry is
// readable only while younger than the store's TTL; expired entries behave
// as absent and are overwritten by the next Set.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte)
}

type memoryEntry struct {
	payload  []byte
	storedAt time.Time
}

// MemoryStore is a process-lifetime in-memory Store. Entries are never
// evicted beyond the expiry check. The mutex guards the read-check-write
// sequence so concurrent requests cannot observe torn entries.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

func (s *MemoryStore) Set(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{payload: payload, storedAt: s.now()}
}

// CachedCatalog decorates a Catalog with a cache-aside Store. A live entry
// short-circuits the upstream call; a miss fetches, stores and returns.
// Fetch errors are propagated unmodified and nothing is cached for them.
type CachedCatalog struct {
	next  Catalog
	store Store
}

// NewCachedCatalog wraps next with the given store.
func NewCachedCatalog(next Catalog, store Store) *CachedCatalog {
	return &CachedCatalog{next: next, store: store}
}

func (c *CachedCatalog) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := cacheAside(c, "products", &out, func() ([]models.Product, error) {
		return c.next.Products(ctx)
	})
	return out, err
}

func (c *CachedCatalog) ProductByID(ctx context.Context, id int) (models.Product, error) {
	var out models.Product
	err := cacheAside(c, fmt.Sprintf("product_%d", id), &out, func() (models.Product, error) {
		return c.next.ProductByID(ctx, id)
	})
	return out, err
}

func (c *CachedCatalog) ProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	var out models.Product
	err := cacheAside(c, "product_slug_"+slug, &out, func() (models.Product, error) {
		return c.next.ProductBySlug(ctx, slug)
	})
	return out, err
}

func (c *CachedCatalog) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := cacheAside(c, "categories", &out, func() ([]models.Category, error) {
		return c.next.Categories(ctx)
	})
	return out, err
}

// cacheAside resolves one logical operation through the store. A payload
// that fails to unmarshal counts as a miss and gets refetched.
func cacheAside[T any](c *CachedCatalog, key string, out *T, fetch func() (T, error)) error {
	if payload, ok := c.store.Get(key); ok {
		if err := json.Unmarshal(payload, out); err == nil {
			return nil
		}
		zap.L().Warn("discarding undecodable cache entry", zap.String("key", key))
	}

	fetched, err := fetch()
	if err != nil {
		return err
	}

	if payload, err := json.Marshal(fetched); err == nil {
		c.store.Set(key, payload)
	} else {
		zap.L().Warn("could not cache response", zap.String("key", key), zap.Error(err))
	}

	*out = fetched
	return nil
}
