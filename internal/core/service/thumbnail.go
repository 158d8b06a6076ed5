package service

import (
	"context"
	"fmt"
	"path/filepath"
	"thumbd/internal/adapters/file"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

const (
	reasonNotFound   = "not_found"
	reasonProcessing = "processing"
)

// ThumbnailService resolves thumbnails from a flat directory of source images, caching every produced size in a
// second flat directory. The cache directory itself is the index: a file at the cache path is a hit.
type ThumbnailService struct {
	fs       afero.Fs
	codec    port.ImageCodec
	recorder port.Recorder
	fullDir  string
	thumbDir string
	inflight singleflight.Group
}

var _ port.ThumbnailResolver = (*ThumbnailService)(nil)

type Option func(*ThumbnailService)

// WithRecorder reports cache outcomes to r.
func WithRecorder(r port.Recorder) Option {
	return func(s *ThumbnailService) {
		s.recorder = r
	}
}

func NewThumbnailService(afs afero.Fs, codec port.ImageCodec, fullDir, thumbDir string,
	opts ...Option) *ThumbnailService {
	s := &ThumbnailService{
		fs:       afs,
		codec:    codec,
		recorder: nopRecorder{},
		fullDir:  fullDir,
		thumbDir: thumbDir,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SourcePath is where the source image for name is expected.
func (s *ThumbnailService) SourcePath(name string) string {
	return filepath.Join(s.fullDir, domain.SourceFilename(name))
}

// CachePath is where the thumbnail for key is stored.
func (s *ThumbnailService) CachePath(key domain.ThumbnailKey) string {
	return filepath.Join(s.thumbDir, key.Filename())
}

// Resolve returns the cache path of the thumbnail for name at size.
//
// An existing file at the cache path is returned as is, without looking at its content. On a miss the source is
// resized by the codec and written atomically; concurrent misses for the same key share a single codec call. A
// failed attempt leaves nothing at the cache path, so a later call may try again.
func (s *ThumbnailService) Resolve(ctx context.Context, name string, size domain.Size) (string, error) {
	l := log.Ctx(ctx).With().
		Str("name", name).
		Str("size", size.String()).
		Logger()

	if !domain.ValidName(name) {
		l.Debug().Msg("rejecting invalid image name")
		s.recorder.Failure(reasonNotFound)
		return "", &domain.NotFoundError{Name: name}
	}

	sourcePath := s.SourcePath(name)
	if err := file.Readable(s.fs, sourcePath); err != nil {
		l.Debug().Err(err).Str("path", sourcePath).Msg("source image unavailable")
		s.recorder.Failure(reasonNotFound)
		return "", &domain.NotFoundError{Name: name}
	}

	key := domain.NewThumbnailKey(name, size)
	cachePath := s.CachePath(key)

	if err := s.fs.MkdirAll(s.thumbDir, 0o755); err != nil {
		return "", s.failed(&l, key, fmt.Errorf("error creating cache directory %w", err))
	}

	hit, err := file.Exists(s.fs, cachePath)
	if err != nil {
		return "", s.failed(&l, key, fmt.Errorf("error checking cache %w", err))
	}
	if hit {
		l.Debug().Str("path", cachePath).Msg("thumbnail cache hit")
		s.recorder.CacheHit()
		return cachePath, nil
	}

	// The shared flight must not die with the caller that happened to start it.
	flightCtx := context.WithoutCancel(l.WithContext(ctx))

	_, err, shared := s.inflight.Do(string(key), func() (any, error) {
		return nil, s.populate(flightCtx, key, sourcePath, cachePath, size)
	})
	if err != nil {
		return "", err
	}

	l.Debug().Bool("shared", shared).Str("path", cachePath).Msg("thumbnail resolved")

	return cachePath, nil
}

func (s *ThumbnailService) populate(ctx context.Context, key domain.ThumbnailKey, sourcePath, cachePath string,
	size domain.Size) error {
	l := log.Ctx(ctx)

	// A flight for the same key may have finished between the cache check and this one starting.
	if hit, err := file.Exists(s.fs, cachePath); err == nil && hit {
		s.recorder.CacheHit()
		return nil
	}

	s.recorder.CacheMiss()
	start := time.Now()

	source, err := afero.ReadFile(s.fs, sourcePath)
	if err != nil {
		return s.failed(l, key, fmt.Errorf("error reading source image %w", err))
	}

	out, err := s.codec.DecodeAndResize(ctx, source, size.Width, size.Height)
	if err != nil {
		return s.failed(l, key, err)
	}

	if err := file.WriteAtomic(s.fs, cachePath, out); err != nil {
		return s.failed(l, key, err)
	}

	elapsed := time.Since(start)
	s.recorder.ObserveResize(elapsed)

	l.Info().
		Str("key", string(key)).
		Int("bytes", len(out)).
		Dur("duration", elapsed).
		Msg("thumbnail created")

	return nil
}

func (s *ThumbnailService) failed(l *zerolog.Logger, key domain.ThumbnailKey, err error) error {
	s.recorder.Failure(reasonProcessing)
	l.Error().Err(err).Str("key", string(key)).Msg("failed to create thumbnail")

	return &domain.ProcessingError{Key: key, Err: err}
}

type nopRecorder struct{}

func (nopRecorder) CacheHit()                   {}
func (nopRecorder) CacheMiss()                  {}
func (nopRecorder) Failure(string)              {}
func (nopRecorder) ObserveResize(time.Duration) {}
