package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Angelo270204/prototipado-backend/config"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
	"github.com/Angelo270204/prototipado-backend/internal/storage/postgresstore"
	"github.com/Angelo270204/prototipado-backend/internal/storage/redisstore"
	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	PingTO   time.Duration
}

func OpenRedis(ctx context.Context, opt RedisOptions) (*redis.Client, error) {
	if opt.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// OpenStore builds the persistence adapter selected by the config.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.New(client), nil
	case "postgres":
		return postgresstore.Open(cfg.DSN())
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
