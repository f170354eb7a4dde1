// Package bootstrap wires runtime dependencies (database, redis, demo
// data) ahead of server construction.
package bootstrap

import (
	"fmt"
	"strings"

	"huddle/internal/cache"
	"huddle/internal/config"
	"huddle/internal/database"
	"huddle/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
// A nil redis client is returned when Redis is unreachable; the service
// runs degraded (no cache, rate limits fail open).
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if strings.EqualFold(cfg.Env, "production") {
			return nil, nil, fmt.Errorf("refusing to seed demo data in production")
		}
		if err := seed.Demo(db, seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
