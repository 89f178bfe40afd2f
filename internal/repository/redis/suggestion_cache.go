package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mixMaster/business/mixer"
	"mixMaster/domain"
)

type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ mixer.SuggestionCache = (*SuggestionCache)(nil)

func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get reports a miss as ok=false with a nil error.
func (c *SuggestionCache) Get(ctx context.Context, key string) (*domain.Recommendation, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get suggestions from Redis: %w", err)
	}

	var rec domain.Recommendation
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached suggestions: %w", err)
	}

	return &rec, true, nil
}

func (c *SuggestionCache) Set(ctx context.Context, key string, rec domain.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store suggestions in Redis: %w", err)
	}

	return nil
}
