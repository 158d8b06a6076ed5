package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeString(t *testing.T) {
	assert.Equal(t, "200x150", Size{Width: 200, Height: 150}.String())
}

func TestSizeWithin(t *testing.T) {
	size := Size{Width: 300, Height: 4000}

	assert.NoError(t, size.Within(0))
	assert.NoError(t, size.Within(4000))

	err := size.Within(1000)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, TooLarge, vErr.Kind)
	assert.Equal(t, 1000, vErr.Limit)
}

func TestThumbnailKey(t *testing.T) {
	key := NewThumbnailKey("fjord", Size{Width: 200, Height: 150})

	assert.Equal(t, ThumbnailKey("fjord-200x150"), key)
	assert.Equal(t, "fjord-200x150.jpg", key.Filename())
	assert.NotEqual(t, key, NewThumbnailKey("fjord", Size{Width: 150, Height: 200}))
	assert.Equal(t, "fjord.jpg", SourceFilename("fjord"))
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "fjord", want: true},
		{name: "dashes and dots", input: "icelandwaterfall.v2", want: true},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "dot", input: ".", want: false},
		{name: "dot dot", input: "..", want: false},
		{name: "slash", input: "../secret", want: false},
		{name: "backslash", input: `..\secret`, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidName(tc.input))
		})
	}
}

func TestStripExtension(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "fjord.jpg", want: "fjord"},
		{input: "fjord", want: "fjord"},
		{input: "archive.tar.gz", want: "archive.tar"},
		{input: "trailing.", want: "trailing."},
		{input: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, StripExtension(tc.input))
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ProcessingError{Key: "fjord-1x1", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fjord-1x1")
	assert.Contains(t, (&NotFoundError{Name: "missing"}).Error(), "source image not found")
}
