package domain

const (
	// ImageExtension is appended to logical names for both source images and thumbnails.
	ImageExtension = ".jpg"
	// JPEGQuality is the fixed encoder quality for every thumbnail.
	JPEGQuality = 90
	// MaxDimension is the largest width or height ParseDimension hands out.
	MaxDimension = 1<<31 - 1
)

const (
	msgMissingOrInvalid = "missing or invalid numeric parameter (width or height)"
	msgNonPositive      = "width and height must be positive integers greater than zero"
	msgTooLarge         = "width and height must not exceed %d"

	ErrSendingReplyFailed = "failed to send reply"
)
