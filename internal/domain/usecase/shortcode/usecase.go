package shortcode

import (
	"context"
	"io"

	"shorten-api/internal/domain/model"
)

type UseCase interface {
	CreateURLMapping(ctx context.Context, owner, fullURL string) (string, error)
	CreateFileMapping(ctx context.Context, owner, filename string, content io.Reader, size int64, contentType string) (string, error)
	Resolve(ctx context.Context, shortID string) (*model.RedirectTarget, error)
	ListMappings(ctx context.Context, owner string) (*model.ShortMappingList, error)
}
