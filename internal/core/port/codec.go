package port

import "context"

type ImageCodec interface {
	// DecodeAndResize decodes source image bytes, stretches the image to exactly width x height and returns it
	// encoded as JPEG.
	DecodeAndResize(ctx context.Context, source []byte, width, height int) ([]byte, error)
}
