package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"feedback_widget/internal/domain/value"
)

const keyPrefix = "feedback-widget:organization-name:"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// NameCache хранит имена организаций в redis, общий для всех реплик.
type NameCache struct {
	client redisClient
	ttl    time.Duration
}

func NewNameCache(client redisClient, ttl time.Duration) *NameCache {
	return &NameCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *NameCache) Get(ctx context.Context, id value.OrganizationID) (string, bool, error) {
	name, err := c.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("redis.Get: %w", err)
	}

	return name, true, nil
}

func (c *NameCache) Set(ctx context.Context, id value.OrganizationID, name string) error {
	if err := c.client.Set(ctx, key(id), name, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func key(id value.OrganizationID) string {
	return keyPrefix + id.String()
}
