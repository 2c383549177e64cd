package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct{ *redis.Client }

func NewRedis(addr, pass string, db int) *RedisClient {
	return &RedisClient{redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// Ping checks the connection and wraps any failure with the address
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", c.Options().Addr, err)
	}
	return nil
}
