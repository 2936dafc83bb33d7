package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"luxride/internal/models"
)

// RedisPopularity keeps one sorted set of destinations per user.
type RedisPopularity struct {
	client *redis.Client
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{client: client}
}

func (r *RedisPopularity) key(userID string) string {
	return "luxride:popular:" + userID
}

func (r *RedisPopularity) Increment(ctx context.Context, userID, location string) error {
	return r.client.ZIncrBy(ctx, r.key(userID), 1, location).Err()
}

func (r *RedisPopularity) Top(ctx context.Context, userID string, n int) ([]models.PopularDestination, error) {
	if n <= 0 {
		return nil, nil
	}
	zs, err := r.client.ZRevRangeWithScores(ctx, r.key(userID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]models.PopularDestination, 0, len(zs))
	for _, z := range zs {
		loc, _ := z.Member.(string)
		out = append(out, models.PopularDestination{UserID: userID, Location: loc, Count: int64(z.Score)})
	}
	return out, nil
}

var _ PopularityCounter = (*RedisPopularity)(nil)
