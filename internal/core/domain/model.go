package domain

import (
	"fmt"
	"path"
	"strings"
)

// Size is a pair of validated, strictly positive dimensions.
type Size struct {
	Width  int
	Height int
}

// Within reports a TooLarge ValidationError when either side exceeds limit.
// A limit of zero or less disables the check.
func (s Size) Within(limit int) error {
	if limit <= 0 {
		return nil
	}
	if s.Width > limit || s.Height > limit {
		return &ValidationError{Kind: TooLarge, Input: s.String(), Limit: limit}
	}

	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ThumbnailKey identifies a (source, size) pair. It doubles as the cache
// filename stem.
type ThumbnailKey string

func NewThumbnailKey(name string, size Size) ThumbnailKey {
	return ThumbnailKey(fmt.Sprintf("%s-%s", name, size))
}

func (k ThumbnailKey) Filename() string {
	return string(k) + ImageExtension
}

// SourceFilename is the on-disk name of the source image for a logical name.
func SourceFilename(name string) string {
	return name + ImageExtension
}

// ValidName reports whether name can address a file inside the source
// directory: not blank, no path separators, not a dot segment.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, `/\`)
}

// StripExtension removes one trailing extension, e.g. "fjord.jpg" -> "fjord".
func StripExtension(filename string) string {
	ext := path.Ext(filename)
	if ext == "." {
		return filename
	}

	return strings.TrimSuffix(filename, ext)
}

type Message struct {
	ID       int
	ChatID   int64
	Username string
	Text     string
}

type Action string

const (
	Typing       Action = "typing"
	SendingPhoto Action = "sending_photo"
)
