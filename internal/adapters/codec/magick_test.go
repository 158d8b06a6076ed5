package codec

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagickArgs(t *testing.T) {
	tests := []struct {
		name   string
		binary []string
		want   []string
	}{
		{
			name:   "imagemagick 7",
			binary: []string{"magick"},
			want:   []string{"-", "-auto-orient", "-resize", "200x150!", "-quality", "90", "jpg:-"},
		},
		{
			name:   "legacy convert with subcommand",
			binary: []string{"magick", "convert"},
			want:   []string{"convert", "-", "-auto-orient", "-resize", "200x150!", "-quality", "90", "jpg:-"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Magick{magickBinary: tc.binary}
			assert.Equal(t, tc.want, m.args(200, 150))
		})
	}
}

func TestMagickDecodeAndResize(t *testing.T) {
	m, err := NewMagick()
	if err != nil {
		t.Skip("imagemagick not installed")
	}

	out, err := m.DecodeAndResize(t.Context(), encodeSource(t, 400, 300, imaging.JPEG), 120, 45)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 45, cfg.Height)

	_, err = m.DecodeAndResize(t.Context(), []byte("garbage"), 10, 10)
	assert.Error(t, err)
}
