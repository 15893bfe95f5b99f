package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VisitorCache handles Redis operations for per-visitor jurisdiction
// persistence, keyed by the caller-supplied visitor identifier
type VisitorCache interface {
	GetState(ctx context.Context, visitorID string) (string, error)
	SetState(ctx context.Context, visitorID, stateCode string) error
}

type visitorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVisitorCache creates a new visitor cache
func NewVisitorCache(client *redis.Client) VisitorCache {
	return &visitorCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func (c *visitorCache) stateKey(visitorID string) string {
	return fmt.Sprintf("visitor:%s:state", visitorID)
}

func (c *visitorCache) GetState(ctx context.Context, visitorID string) (string, error) {
	val, err := c.client.Get(ctx, c.stateKey(visitorID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *visitorCache) SetState(ctx context.Context, visitorID, stateCode string) error {
	return c.client.Set(ctx, c.stateKey(visitorID), stateCode, c.ttl).Err()
}
