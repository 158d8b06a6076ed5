package codec

import (
	"bytes"
	"context"
	"fmt"
	"thumbd/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

// Imaging resizes in-process with disintegration/imaging.
type Imaging struct {
	filter imaging.ResampleFilter
}

func NewImaging() *Imaging {
	return &Imaging{filter: imaging.Lanczos}
}

// DecodeAndResize stretches the source to exactly width x height; aspect ratio is not preserved.
func (c *Imaging) DecodeAndResize(ctx context.Context, source []byte, width, height int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(source), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding source image %w", err)
	}

	resized := imaging.Resize(img, width, height, c.filter)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(domain.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("error encoding thumbnail %w", err)
	}

	log.Ctx(ctx).Debug().
		Int("sourceBytes", len(source)).
		Int("bytes", buf.Len()).
		Int("width", width).
		Int("height", height).
		Msg("image resized")

	return buf.Bytes(), nil
}
