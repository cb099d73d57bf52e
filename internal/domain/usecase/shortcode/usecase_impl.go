package shortcode

import (
	"context"
	"io"
	"strings"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/entity"
	"shorten-api/internal/domain/gateway/cache"
	"shorten-api/internal/domain/gateway/db"
	"shorten-api/internal/domain/gateway/storage"
	"shorten-api/internal/domain/model"
	"shorten-api/pkg/log"
	"shorten-api/pkg/msg"
)

type shortcodeUseCase struct {
	mappings    db.MappingGateway
	blobs       storage.BlobGateway
	cache       cache.ResolveCache
	blobBaseURL string
}

// NewShortcodeUseCase wires the mapping store, the blob store and an optional
// resolve cache (pass nil to disable caching). blobBaseURL is the public base
// under which stored files are served.
func NewShortcodeUseCase(mappings db.MappingGateway, blobs storage.BlobGateway, resolveCache cache.ResolveCache, blobBaseURL string) UseCase {
	return &shortcodeUseCase{
		mappings:    mappings,
		blobs:       blobs,
		cache:       resolveCache,
		blobBaseURL: strings.TrimRight(blobBaseURL, "/"),
	}
}

func (uc *shortcodeUseCase) CreateURLMapping(ctx context.Context, owner, fullURL string) (string, error) {
	mapping, err := NewURLMapping(owner, fullURL)
	if err != nil {
		return "", err
	}

	shortID, err := uc.createWithRetry(ctx, mapping)
	if err != nil {
		return "", err
	}

	log.Infof(msg.GetMessage("shortcode.created-url", fullURL, shortID))
	return shortID, nil
}

func (uc *shortcodeUseCase) CreateFileMapping(ctx context.Context, owner, filename string, content io.Reader, size int64, contentType string) (string, error) {
	mapping, err := NewFileMapping(owner, filename)
	if err != nil {
		return "", err
	}

	if err := uc.blobs.Put(ctx, mapping.StorageKey, content, size, contentType); err != nil {
		return "", err
	}

	shortID, err := uc.createWithRetry(ctx, mapping)
	if err != nil {
		return "", err
	}

	log.Infof(msg.GetMessage("shortcode.created-file", filename, owner, shortID))
	return shortID, nil
}

// createWithRetry persists the mapping, regenerating the identifier once when
// the conditional write reports a collision. A second collision in a row means
// something beyond bad luck and is surfaced as-is.
func (uc *shortcodeUseCase) createWithRetry(ctx context.Context, mapping entity.ShortMapping) (string, error) {
	err := uc.mappings.Create(ctx, mapping)
	if err == nil {
		return mapping.ShortID, nil
	}
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		return "", err
	}

	log.Warnf(msg.GetMessage("shortcode.collision-retry", mapping.ShortID))
	mapping.ShortID = generateShortID()
	if err := uc.mappings.Create(ctx, mapping); err != nil {
		return "", err
	}
	return mapping.ShortID, nil
}

func (uc *shortcodeUseCase) Resolve(ctx context.Context, shortID string) (*model.RedirectTarget, error) {
	if strings.TrimSpace(shortID) == "" {
		return nil, apperrors.Validation(msg.GetMessage("shortcode.error.empty-short-id"))
	}

	if mapping := uc.cachedMapping(ctx, shortID); mapping != nil {
		return uc.redirectTarget(*mapping)
	}

	mapping, err := uc.mappings.FindByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, apperrors.NotFound(msg.GetMessage("shortcode.error.not-found", shortID))
	}

	uc.cacheMapping(ctx, *mapping)
	return uc.redirectTarget(*mapping)
}

// redirectTarget dispatches on the mapping's target variant: a URL mapping
// redirects verbatim, a file mapping redirects to the blob store. A record
// with neither variant is treated as absent.
func (uc *shortcodeUseCase) redirectTarget(mapping entity.ShortMapping) (*model.RedirectTarget, error) {
	switch {
	case mapping.IsURL():
		return &model.RedirectTarget{Kind: model.RedirectURL, Location: mapping.FullURL}, nil
	case mapping.IsFile():
		return &model.RedirectTarget{Kind: model.RedirectFile, Location: uc.blobBaseURL + "/" + mapping.StorageKey}, nil
	default:
		return nil, apperrors.NotFound(msg.GetMessage("shortcode.error.not-found", mapping.ShortID))
	}
}

func (uc *shortcodeUseCase) ListMappings(ctx context.Context, owner string) (*model.ShortMappingList, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperrors.Validation(msg.GetMessage("shortcode.error.empty-username"))
	}

	mappings, err := uc.mappings.FindAllByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &model.ShortMappingList{
		URLs:       mappings,
		TotalCount: len(mappings),
	}, nil
}

// cachedMapping consults the resolve cache. Cache faults are logged and
// treated as misses so the store stays the source of truth.
func (uc *shortcodeUseCase) cachedMapping(ctx context.Context, shortID string) *entity.ShortMapping {
	if uc.cache == nil {
		return nil
	}
	mapping, err := uc.cache.GetMapping(ctx, shortID)
	if err != nil {
		log.Warnf(msg.GetMessage("shortcode.cache-fault", err))
		return nil
	}
	return mapping
}

func (uc *shortcodeUseCase) cacheMapping(ctx context.Context, mapping entity.ShortMapping) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetMapping(ctx, mapping); err != nil {
		log.Warnf(msg.GetMessage("shortcode.cache-fault", err))
	}
}
