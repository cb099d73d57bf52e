package shortcode

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/entity"
	"shorten-api/internal/domain/model"
)

// fakeMappingStore reproduces the store contract in memory: write-if-absent
// on the short id, point lookup, owner-partitioned listing ordered by short id.
type fakeMappingStore struct {
	records    map[string]entity.ShortMapping
	createHook func(mapping entity.ShortMapping) error
}

func newFakeMappingStore() *fakeMappingStore {
	return &fakeMappingStore{records: make(map[string]entity.ShortMapping)}
}

func (s *fakeMappingStore) Create(ctx context.Context, mapping entity.ShortMapping) error {
	if s.createHook != nil {
		if err := s.createHook(mapping); err != nil {
			return err
		}
	}
	if _, exists := s.records[mapping.ShortID]; exists {
		return apperrors.Conflict("short id already exists")
	}
	s.records[mapping.ShortID] = mapping
	return nil
}

func (s *fakeMappingStore) FindByShortID(ctx context.Context, shortID string) (*entity.ShortMapping, error) {
	mapping, exists := s.records[shortID]
	if !exists {
		return nil, nil
	}
	return &mapping, nil
}

func (s *fakeMappingStore) FindAllByOwner(ctx context.Context, owner string) ([]entity.ShortMapping, error) {
	result := make([]entity.ShortMapping, 0)
	for _, mapping := range s.records {
		if mapping.Owner == owner {
			result = append(result, mapping)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShortID < result[j].ShortID })
	return result, nil
}

type fakeBlobStore struct {
	objects map[string]string
	putErr  error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string]string)}
}

func (s *fakeBlobStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if s.putErr != nil {
		return s.putErr
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = string(content)
	return nil
}

func (s *fakeBlobStore) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

type fakeResolveCache struct {
	entries map[string]entity.ShortMapping
	getErr  error
	hits    int
	misses  int
}

func newFakeResolveCache() *fakeResolveCache {
	return &fakeResolveCache{entries: make(map[string]entity.ShortMapping)}
}

func (c *fakeResolveCache) GetMapping(ctx context.Context, shortID string) (*entity.ShortMapping, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	mapping, exists := c.entries[shortID]
	if !exists {
		c.misses++
		return nil, nil
	}
	c.hits++
	return &mapping, nil
}

func (c *fakeResolveCache) SetMapping(ctx context.Context, mapping entity.ShortMapping) error {
	c.entries[mapping.ShortID] = mapping
	return nil
}

func (c *fakeResolveCache) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

const blobBase = "http://localhost:4566/shorten-files"

func newTestUseCase(store *fakeMappingStore, blobs *fakeBlobStore) UseCase {
	return NewShortcodeUseCase(store, blobs, nil, blobBase)
}

func TestCreateURLMappingThenResolve(t *testing.T) {
	store := newFakeMappingStore()
	uc := newTestUseCase(store, newFakeBlobStore())

	shortID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com/doc")
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{6}$", shortID)

	target, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, model.RedirectURL, target.Kind)
	assert.Equal(t, "https://example.com/doc", target.Location)
}

func TestCreateFileMappingThenResolve(t *testing.T) {
	store := newFakeMappingStore()
	blobs := newFakeBlobStore()
	uc := newTestUseCase(store, blobs)

	shortID, err := uc.CreateFileMapping(context.Background(), "alice", "report.pdf",
		strings.NewReader("content"), 7, "application/pdf")
	require.NoError(t, err)

	// the bytes ended up in the blob store under the derived key
	require.Len(t, blobs.objects, 1)
	var storageKey string
	for key := range blobs.objects {
		storageKey = key
	}
	assert.True(t, strings.HasPrefix(storageKey, "alice/"))
	assert.Equal(t, "content", blobs.objects[storageKey])

	target, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, model.RedirectFile, target.Kind)
	assert.Equal(t, blobBase+"/"+storageKey, target.Location)
}

func TestCreateFileMappingDerivesDistinctKeys(t *testing.T) {
	store := newFakeMappingStore()
	blobs := newFakeBlobStore()
	uc := newTestUseCase(store, blobs)

	_, err := uc.CreateFileMapping(context.Background(), "alice", "report.pdf", strings.NewReader("a"), 1, "")
	require.NoError(t, err)
	_, err = uc.CreateFileMapping(context.Background(), "alice", "report.pdf", strings.NewReader("b"), 1, "")
	require.NoError(t, err)

	assert.Len(t, blobs.objects, 2)
}

func TestCreateFileMappingBlobFaultSkipsStoreWrite(t *testing.T) {
	store := newFakeMappingStore()
	blobs := newFakeBlobStore()
	blobs.putErr = apperrors.Storage("backend unavailable", errors.New("connection refused"))
	uc := newTestUseCase(store, blobs)

	_, err := uc.CreateFileMapping(context.Background(), "alice", "report.pdf", strings.NewReader("x"), 1, "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindStorage))
	assert.Empty(t, store.records)
}

func TestResolveUnknownIDReturnsNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeMappingStore(), newFakeBlobStore())

	_, err := uc.Resolve(context.Background(), "zzzzzz")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestResolveEmptyVariantReturnsNotFound(t *testing.T) {
	store := newFakeMappingStore()
	store.records["abc123"] = entity.ShortMapping{ShortID: "abc123", Owner: "alice"}
	uc := newTestUseCase(store, newFakeBlobStore())

	_, err := uc.Resolve(context.Background(), "abc123")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestResolveIsIdempotent(t *testing.T) {
	store := newFakeMappingStore()
	uc := newTestUseCase(store, newFakeBlobStore())

	shortID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com")
	require.NoError(t, err)

	first, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	second, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListMappingsIsPartitionedByOwner(t *testing.T) {
	store := newFakeMappingStore()
	uc := newTestUseCase(store, newFakeBlobStore())

	aliceID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com/doc")
	require.NoError(t, err)
	_, err = uc.CreateURLMapping(context.Background(), "bob", "https://example.org")
	require.NoError(t, err)

	list, err := uc.ListMappings(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	require.Len(t, list.URLs, 1)
	assert.Equal(t, aliceID, list.URLs[0].ShortID)
	assert.Equal(t, "alice", list.URLs[0].Owner)
	assert.Equal(t, "https://example.com/doc", list.URLs[0].FullURL)

	empty, err := uc.ListMappings(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalCount)
	assert.Empty(t, empty.URLs)
}

func TestCreateRetriesOnceOnCollision(t *testing.T) {
	store := newFakeMappingStore()
	attempts := 0
	store.createHook = func(mapping entity.ShortMapping) error {
		attempts++
		if attempts == 1 {
			return apperrors.Conflict("short id already exists")
		}
		return nil
	}
	uc := newTestUseCase(store, newFakeBlobStore())

	shortID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, shortID, 6)
}

func TestCreateSurfacesRepeatedCollision(t *testing.T) {
	store := newFakeMappingStore()
	store.createHook = func(mapping entity.ShortMapping) error {
		return apperrors.Conflict("short id already exists")
	}
	uc := newTestUseCase(store, newFakeBlobStore())

	_, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com")
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCreateCollisionKeepsFirstMapping(t *testing.T) {
	store := newFakeMappingStore()
	store.records["abc123"] = entity.ShortMapping{ShortID: "abc123", Owner: "alice", FullURL: "https://example.com/first"}

	err := store.Create(context.Background(), entity.ShortMapping{ShortID: "abc123", Owner: "bob", FullURL: "https://example.org/second"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	uc := newTestUseCase(store, newFakeBlobStore())
	target, err := uc.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/first", target.Location)
}

func TestValidationErrors(t *testing.T) {
	uc := newTestUseCase(newFakeMappingStore(), newFakeBlobStore())
	ctx := context.Background()

	_, err := uc.CreateURLMapping(ctx, "", "https://example.com")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = uc.CreateURLMapping(ctx, "alice", "not a url")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = uc.Resolve(ctx, "")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = uc.ListMappings(ctx, " ")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestResolveUsesCache(t *testing.T) {
	store := newFakeMappingStore()
	resolveCache := newFakeResolveCache()
	uc := NewShortcodeUseCase(store, newFakeBlobStore(), resolveCache, blobBase)

	shortID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com")
	require.NoError(t, err)

	// first resolve misses and populates, second is served from the cache
	_, err = uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, 1, resolveCache.misses)

	target, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, 1, resolveCache.hits)
	assert.Equal(t, "https://example.com", target.Location)
}

func TestResolveCacheFaultFallsBackToStore(t *testing.T) {
	store := newFakeMappingStore()
	resolveCache := newFakeResolveCache()
	resolveCache.getErr = errors.New("dial tcp: connection refused")
	uc := NewShortcodeUseCase(store, newFakeBlobStore(), resolveCache, blobBase)

	shortID, err := uc.CreateURLMapping(context.Background(), "alice", "https://example.com")
	require.NoError(t, err)

	target, err := uc.Resolve(context.Background(), shortID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target.Location)
}
