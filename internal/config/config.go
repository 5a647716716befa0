package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the storefront service settings, loaded from STOREFRONT_*
// environment variables with sensible local-development defaults.
type Config struct {
	Addr           string
	APIBaseURL     string
	CacheBackend   string // "memory" or "redis"
	CacheTTL       time.Duration
	RedisAddr      string
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("api_base_url", "http://localhost:8000/api/v1")
	v.SetDefault("cache_backend", "memory")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("rate_limit_burst", 20)

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	var cfg Config
	cfg.Addr = v.GetString("addr")
	cfg.APIBaseURL = v.GetString("api_base_url")
	cfg.CacheBackend = v.GetString("cache_backend")
	cfg.CacheTTL = v.GetDuration("cache_ttl")
	cfg.RedisAddr = v.GetString("redis_addr")
	cfg.RequestTimeout = v.GetDuration("request_timeout")
	cfg.RateLimitRPS = v.GetFloat64("rate_limit_rps")
	cfg.RateLimitBurst = v.GetInt("rate_limit_burst")
	return cfg, nil
}
