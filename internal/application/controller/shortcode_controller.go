package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shorten-api/internal/domain/apperrors"
	"shorten-api/internal/domain/model"
	"shorten-api/internal/domain/usecase/shortcode"
	"shorten-api/pkg/log"
	"shorten-api/pkg/msg"
)

type ShortcodeController struct {
	api          *echo.Group
	useCase      shortcode.UseCase
	publicBase   string
	maxUploadLen int64
}

func NewShortcodeController(api *echo.Group, useCase shortcode.UseCase, publicBase string, maxUploadLen int64) *ShortcodeController {
	return &ShortcodeController{
		api:          api,
		useCase:      useCase,
		publicBase:   strings.TrimRight(publicBase, "/"),
		maxUploadLen: maxUploadLen,
	}
}

// InitShortcodeRoutes initializes short url routes
func (controller *ShortcodeController) InitShortcodeRoutes() {
	controller.api.POST("/shorten/url", controller.CreateShortURL)
	controller.api.POST("/upload", controller.UploadFile)
	controller.api.GET("/user/:username/urls", controller.ListUserShortURLs)
	// static routes win over this param route in echo's router
	controller.api.GET("/:short_id", controller.RedirectShortURL)
}

// CreateShortURL godoc
// @Summary Create a shortened URL
// @Description Map a full URL to a fresh short identifier for the given username
// @Tags URL Shortening
// @Accept json
// @Produce json
// @Param request body model.CreateURLMappingDTO true "Username and full URL"
// @Success 200 {object} model.ShortURLResponse "Short URL"
// @Failure 400 {object} map[string]string "Malformed input"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shorten/url [post]
func (controller *ShortcodeController) CreateShortURL(c echo.Context) error {
	var dto model.CreateURLMappingDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("shortcode.error.invalid-body")})
	}

	shortID, err := controller.useCase.CreateURLMapping(c.Request().Context(), dto.Username, dto.FullURL)
	if err != nil {
		return controller.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, model.ShortURLResponse{ShortURL: controller.publicBase + "/" + shortID})
}

// UploadFile godoc
// @Summary Upload a file and create a shortened URL
// @Description Store the uploaded file and map it to a fresh short identifier
// @Tags URL Shortening
// @Accept multipart/form-data
// @Produce json
// @Param username query string true "Owner username"
// @Param file formData file true "File to upload"
// @Success 200 {object} model.ShortURLResponse "Short URL"
// @Failure 400 {object} map[string]string "Malformed input"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /upload [post]
func (controller *ShortcodeController) UploadFile(c echo.Context) error {
	username := c.QueryParam("username")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("shortcode.error.missing-file")})
	}
	if controller.maxUploadLen > 0 && fileHeader.Size > controller.maxUploadLen {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("shortcode.error.file-too-large")})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return controller.errorResponse(c, err)
	}
	defer file.Close()

	shortID, err := controller.useCase.CreateFileMapping(c.Request().Context(),
		username, fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return controller.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, model.ShortURLResponse{ShortURL: controller.publicBase + "/" + shortID})
}

// RedirectShortURL godoc
// @Summary Redirect to the original URL or file
// @Description Resolve a short identifier and redirect to its target
// @Tags URL Shortening
// @Param short_id path string true "Short identifier"
// @Success 302 "Redirect to the mapped resource"
// @Failure 404 {object} map[string]string "Short URL not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /{short_id} [get]
func (controller *ShortcodeController) RedirectShortURL(c echo.Context) error {
	shortID := c.Param("short_id")

	target, err := controller.useCase.Resolve(c.Request().Context(), shortID)
	if err != nil {
		return controller.errorResponse(c, err)
	}

	return c.Redirect(http.StatusFound, target.Location)
}

// ListUserShortURLs godoc
// @Summary Retrieve all short URLs for a user
// @Description List every mapping created under the given username
// @Tags URL Shortening
// @Produce json
// @Param username path string true "Owner username"
// @Success 200 {object} model.ShortMappingList "Mappings and total count"
// @Failure 400 {object} map[string]string "Malformed input"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /user/{username}/urls [get]
func (controller *ShortcodeController) ListUserShortURLs(c echo.Context) error {
	username := c.Param("username")

	list, err := controller.useCase.ListMappings(c.Request().Context(), username)
	if err != nil {
		return controller.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// errorResponse maps domain errors to HTTP statuses. Storage faults and
// anything unclassified collapse to a generic 500 so backend details never
// reach the client.
func (controller *ShortcodeController) errorResponse(c echo.Context, err error) error {
	switch {
	case apperrors.IsKind(err, apperrors.KindValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperrors.IsKind(err, apperrors.KindNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperrors.IsKind(err, apperrors.KindConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		log.Errorf(msg.GetMessage("shortcode.request-failed", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("shortcode.error.internal")})
	}
}
