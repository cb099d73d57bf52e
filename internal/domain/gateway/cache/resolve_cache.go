package cache

import (
	"context"

	"shorten-api/internal/domain/entity"
	"shorten-api/internal/domain/model"
)

// ResolveCache is a read-through cache in front of the mapping store. Mappings
// are immutable once written, so entries only ever expire, never invalidate.
type ResolveCache interface {
	// GetMapping returns the cached mapping or (nil, nil) on a miss.
	GetMapping(ctx context.Context, shortID string) (*entity.ShortMapping, error)
	SetMapping(ctx context.Context, mapping entity.ShortMapping) error
	Health() model.ComponentHealthStatus
}
