package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hirehub_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the assessment cache. Callers treat a nil client as
// cache-off, so a failure here degrades the service, not kills it.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
