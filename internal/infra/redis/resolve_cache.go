package redis

import (
	"context"
	"errors"
	"time"

	"shorten-api/internal/domain/entity"
	"shorten-api/internal/domain/gateway/cache"
	"shorten-api/internal/domain/model"
	"shorten-api/pkg/redis"
)

const keyPrefix = "shorten:mapping:"

// ResolveCacheAdapter implements the domain resolve cache on pkg/redis.
type ResolveCacheAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cache.ResolveCache = (*ResolveCacheAdapter)(nil)

func NewResolveCacheAdapter(client *redis.Client, ttl time.Duration) *ResolveCacheAdapter {
	return &ResolveCacheAdapter{client: client, ttl: ttl}
}

func (adapter *ResolveCacheAdapter) GetMapping(ctx context.Context, shortID string) (*entity.ShortMapping, error) {
	var mapping entity.ShortMapping
	err := adapter.client.GetJSON(ctx, keyPrefix+shortID, &mapping)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (adapter *ResolveCacheAdapter) SetMapping(ctx context.Context, mapping entity.ShortMapping) error {
	return adapter.client.SetJSON(ctx, keyPrefix+mapping.ShortID, mapping, adapter.ttl)
}

func (adapter *ResolveCacheAdapter) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := adapter.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"host": adapter.client.Config().Host,
		},
	}
}
