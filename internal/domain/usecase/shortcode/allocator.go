package shortcode

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/entity"
	"shorten-api/pkg/msg"
)

// shortIDLength is the number of hex characters in a public identifier.
// 6 hex chars give ~16.7M distinct values; collisions are possible under the
// birthday bound and are caught by the store's conditional write.
const shortIDLength = 6

// NewURLMapping binds a URL target to an owner under a fresh identifier.
// It performs no persistence.
func NewURLMapping(owner, fullURL string) (entity.ShortMapping, error) {
	if strings.TrimSpace(owner) == "" {
		return entity.ShortMapping{}, apperrors.Validation(msg.GetMessage("shortcode.error.empty-username"))
	}
	if !isAbsoluteURL(fullURL) {
		return entity.ShortMapping{}, apperrors.Validation(msg.GetMessage("shortcode.error.invalid-url"))
	}

	return entity.ShortMapping{
		ShortID:   generateShortID(),
		Owner:     owner,
		FullURL:   fullURL,
		CreatedAt: nowUTC(),
	}, nil
}

// NewFileMapping binds a file target to an owner under a fresh identifier and
// derives the storage key the caller must upload the bytes under. The key
// combines the owner, a random component, and the original filename so that
// repeated uploads of the same name never collide.
func NewFileMapping(owner, filename string) (entity.ShortMapping, error) {
	if strings.TrimSpace(owner) == "" {
		return entity.ShortMapping{}, apperrors.Validation(msg.GetMessage("shortcode.error.empty-username"))
	}
	if strings.TrimSpace(filename) == "" {
		return entity.ShortMapping{}, apperrors.Validation(msg.GetMessage("shortcode.error.empty-filename"))
	}

	return entity.ShortMapping{
		ShortID:    generateShortID(),
		Owner:      owner,
		StorageKey: fmt.Sprintf("%s/%s-%s", owner, randomHex(), filename),
		CreatedAt:  nowUTC(),
	}, nil
}

func generateShortID() string {
	return randomHex()[:shortIDLength]
}

func randomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
