package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/harvestroot/storefront/internal/catalog"
	"github.com/harvestroot/storefront/internal/config"
	router "github.com/harvestroot/storefront/internal/http"
	"github.com/harvestroot/storefront/internal/http/handlers"
	rl "github.com/harvestroot/storefront/internal/http/rate_limiter"
)

var ctx = context.Background()

// @title Storefront Catalog API
// @version 1.0
// @description Read-only storefront service fronting the upstream catalog API.
// @host localhost:8080
// @BasePath /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	var store catalog.Store
	switch cfg.CacheBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		store = catalog.NewRedisStore(rdb, ctx, cfg.CacheTTL)
	default:
		store = catalog.NewMemoryStore(cfg.CacheTTL)
	}

	client := catalog.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	handlers.SetCatalog(catalog.NewCachedCatalog(client, store))

	r := router.NewRouter()
	logger.Info("server running", zap.String("addr", cfg.Addr), zap.String("upstream", cfg.APIBaseURL))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
