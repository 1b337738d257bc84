package cache

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/edog39/FindMyFade-sub000/internal/config"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
