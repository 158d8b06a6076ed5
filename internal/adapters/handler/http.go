package handler

import (
	"context"
	"errors"
	"net/http"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	contentTypeJPEG = "image/jpeg"

	msgMissingFilename = "Missing filename parameter"
	msgMissingParams   = "Missing query parameters"
	msgInvalidSize     = "Invalid width or height"
	msgSourceNotFound  = "Source image not found"
	msgImageNotFound   = "Image not found"
	msgInternal        = "Internal server error"
)

// Images serves thumbnails over HTTP. It validates query parameters, strips a trailing extension from the
// requested filename and maps resolver errors onto status codes.
type Images struct {
	resolver     port.ThumbnailResolver
	fs           afero.Fs
	maxDimension int
}

func NewImages(resolver port.ThumbnailResolver, afs afero.Fs, maxDimension int) *Images {
	return &Images{resolver: resolver, fs: afs, maxDimension: maxDimension}
}

// NewRouter wires middleware and every route of the service.
func NewRouter(images *Images, afs afero.Fs, fullDir string, metrics http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	r.Use(gin.CustomRecovery(HandlePanics()))

	r.GET("/health", Health)
	r.GET("/api/images", images.GetImage)
	r.GET("/resize", images.Resize)
	r.StaticFS("/images/full", afero.NewHttpFs(afs).Dir(fullDir))

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	return r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetImage handles GET /api/images?filename=<name>&width=<w>&height=<h> and reports errors as JSON.
func (h *Images) GetImage(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFilename})
		return
	}

	size, err := domain.ParseSize(c.Query("width"), c.Query("height"), h.maxDimension)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.thumbnail(c.Request.Context(), filename, size)
	if err != nil {
		switch status := statusFor(err); status {
		case http.StatusNotFound:
			c.JSON(status, gin.H{"error": msgSourceNotFound})
		default:
			c.JSON(status, gin.H{"error": msgInternal})
		}
		return
	}

	c.Data(http.StatusOK, contentTypeJPEG, data)
}

// Resize handles GET /resize?filename=<name>&width=<w>&height=<h> and reports errors as plain text.
func (h *Images) Resize(c *gin.Context) {
	filename, width, height := c.Query("filename"), c.Query("width"), c.Query("height")
	if filename == "" || width == "" || height == "" {
		c.String(http.StatusBadRequest, msgMissingParams)
		return
	}

	size, err := domain.ParseSize(width, height, h.maxDimension)
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidSize)
		return
	}

	data, err := h.thumbnail(c.Request.Context(), filename, size)
	if err != nil {
		switch status := statusFor(err); status {
		case http.StatusNotFound:
			c.String(status, msgImageNotFound)
		default:
			c.String(status, msgInternal)
		}
		return
	}

	c.Data(http.StatusOK, contentTypeJPEG, data)
}

func (h *Images) thumbnail(ctx context.Context, filename string, size domain.Size) ([]byte, error) {
	l := log.Ctx(ctx)

	path, err := h.resolver.Resolve(ctx, domain.StripExtension(filename), size)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			l.Error().Err(err).Str("filename", filename).Msg("failed to resolve thumbnail")
		}
		return nil, err
	}

	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		l.Error().Err(err).Str("path", path).Msg("failed to read thumbnail")
		return nil, err
	}

	return data, nil
}

func statusFor(err error) int {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
