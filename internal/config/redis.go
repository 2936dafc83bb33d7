package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to REDIS_URL and checks the connection.
func InitRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
