package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/entity"
	"shorten-api/internal/domain/model"
)

type mockShortcodeUseCase struct {
	createURLFunc  func(ctx context.Context, owner, fullURL string) (string, error)
	createFileFunc func(ctx context.Context, owner, filename string, content io.Reader, size int64, contentType string) (string, error)
	resolveFunc    func(ctx context.Context, shortID string) (*model.RedirectTarget, error)
	listFunc       func(ctx context.Context, owner string) (*model.ShortMappingList, error)
}

func (m *mockShortcodeUseCase) CreateURLMapping(ctx context.Context, owner, fullURL string) (string, error) {
	return m.createURLFunc(ctx, owner, fullURL)
}

func (m *mockShortcodeUseCase) CreateFileMapping(ctx context.Context, owner, filename string, content io.Reader, size int64, contentType string) (string, error) {
	return m.createFileFunc(ctx, owner, filename, content, size, contentType)
}

func (m *mockShortcodeUseCase) Resolve(ctx context.Context, shortID string) (*model.RedirectTarget, error) {
	return m.resolveFunc(ctx, shortID)
}

func (m *mockShortcodeUseCase) ListMappings(ctx context.Context, owner string) (*model.ShortMappingList, error) {
	return m.listFunc(ctx, owner)
}

func newTestServer(useCase *mockShortcodeUseCase) *echo.Echo {
	e := echo.New()
	controller := NewShortcodeController(e.Group(""), useCase, "http://localhost:8000", 10<<20)
	controller.InitShortcodeRoutes()
	return e
}

func TestCreateShortURLHandler(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		createURLFunc: func(ctx context.Context, owner, fullURL string) (string, error) {
			assert.Equal(t, "alice", owner)
			assert.Equal(t, "https://example.com/doc", fullURL)
			return "abc123", nil
		},
	}
	e := newTestServer(useCase)

	body := `{"username":"alice","full_url":"https://example.com/doc"}`
	req := httptest.NewRequest(http.MethodPost, "/shorten/url", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response model.ShortURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "http://localhost:8000/abc123", response.ShortURL)
}

func TestCreateShortURLHandlerValidation(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		createURLFunc: func(ctx context.Context, owner, fullURL string) (string, error) {
			return "", apperrors.Validation("invalid URL")
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/shorten/url", strings.NewReader(`{"username":"alice","full_url":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadFileHandler(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		createFileFunc: func(ctx context.Context, owner, filename string, content io.Reader, size int64, contentType string) (string, error) {
			assert.Equal(t, "alice", owner)
			assert.Equal(t, "report.pdf", filename)
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "content", string(data))
			return "def456", nil
		},
	}
	e := newTestServer(useCase)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "report.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("content"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload?username=alice", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response model.ShortURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "http://localhost:8000/def456", response.ShortURL)
}

func TestUploadFileHandlerMissingFile(t *testing.T) {
	e := newTestServer(&mockShortcodeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/upload?username=alice", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedirectShortURLHandler(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		resolveFunc: func(ctx context.Context, shortID string) (*model.RedirectTarget, error) {
			assert.Equal(t, "abc123", shortID)
			return &model.RedirectTarget{Kind: model.RedirectURL, Location: "https://example.com/doc"}, nil
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/doc", rec.Header().Get(echo.HeaderLocation))
}

func TestRedirectShortURLHandlerNotFound(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		resolveFunc: func(ctx context.Context, shortID string) (*model.RedirectTarget, error) {
			return nil, apperrors.NotFound("short URL not found")
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/zzzzzz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedirectShortURLHandlerHidesBackendFaults(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		resolveFunc: func(ctx context.Context, shortID string) (*model.RedirectTarget, error) {
			return nil, apperrors.Storage("backend unavailable", assert.AnError)
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestListUserShortURLsHandler(t *testing.T) {
	useCase := &mockShortcodeUseCase{
		listFunc: func(ctx context.Context, owner string) (*model.ShortMappingList, error) {
			assert.Equal(t, "alice", owner)
			return &model.ShortMappingList{
				URLs: []entity.ShortMapping{
					{ShortID: "abc123", Owner: "alice", FullURL: "https://example.com/doc"},
				},
				TotalCount: 1,
			}, nil
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/user/alice/urls", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response model.ShortMappingList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.TotalCount)
	require.Len(t, response.URLs, 1)
	assert.Equal(t, "abc123", response.URLs[0].ShortID)
}
