package db

import (
	"context"

	"shorten-api/internal/domain/entity"
)

type MappingGateway interface {
	// Create persists a new mapping. It must refuse to overwrite an existing
	// record with the same short id and report that as a conflict.
	Create(ctx context.Context, mapping entity.ShortMapping) error

	// FindByShortID returns the mapping for the given short id, or (nil, nil)
	// when no mapping exists.
	FindByShortID(ctx context.Context, shortID string) (*entity.ShortMapping, error)

	// FindAllByOwner returns every mapping created by the given owner, ordered
	// by short id ascending.
	FindAllByOwner(ctx context.Context, owner string) ([]entity.ShortMapping, error)
}
