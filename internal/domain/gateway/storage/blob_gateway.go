package storage

import (
	"context"
	"io"

	"shorten-api/internal/domain/model"
)

// BlobGateway is the opaque put-by-key blob store holding uploaded file bytes.
type BlobGateway interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Health() model.ComponentHealthStatus
}
