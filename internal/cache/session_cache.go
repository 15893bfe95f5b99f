package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"claimconnect/internal/model"
)

// SessionCache handles Redis operations for funnel session state
type SessionCache interface {
	Set(ctx context.Context, state *model.FormState) error
	Get(ctx context.Context, sessionID string) (*model.FormState, error)
	Delete(ctx context.Context, sessionID string) error

	// Submit guard
	AcquireSubmit(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmit(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// Key helpers
func (c *sessionCache) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (c *sessionCache) submitKey(sessionID string) string {
	return fmt.Sprintf("session:%s:submitting", sessionID)
}

func (c *sessionCache) Set(ctx context.Context, state *model.FormState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.sessionKey(state.SessionID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, sessionID string) (*model.FormState, error) {
	data, err := c.client.Get(ctx, c.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.FormState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	if state.Answers == nil {
		state.Answers = model.AnswerSet{}
	}
	return &state, nil
}

func (c *sessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.sessionKey(sessionID)).Err()
}

// AcquireSubmit takes the per-session submit lock. Returns false when a
// submission is already in flight.
func (c *sessionCache) AcquireSubmit(ctx context.Context, sessionID string) (bool, error) {
	return c.client.SetNX(ctx, c.submitKey(sessionID), "1", time.Minute).Result()
}

func (c *sessionCache) ReleaseSubmit(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.submitKey(sessionID)).Err()
}
