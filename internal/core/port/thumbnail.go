package port

import (
	"context"
	"thumbd/internal/core/domain"
	"time"
)

type ThumbnailResolver interface {
	// Resolve returns the cache path of the thumbnail for name at the given size, producing it on a cache miss.
	// Errors are *domain.NotFoundError or *domain.ProcessingError.
	Resolve(ctx context.Context, name string, size domain.Size) (string, error)
}

// Recorder receives cache outcomes from the thumbnail service.
type Recorder interface {
	CacheHit()
	CacheMiss()
	Failure(reason string)
	ObserveResize(d time.Duration)
}
