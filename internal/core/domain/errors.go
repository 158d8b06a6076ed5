package domain

import "fmt"

// ValidationKind tells collaborators why client input was rejected.
type ValidationKind string

const (
	MissingOrInvalid ValidationKind = "missing-or-invalid"
	NonPositive      ValidationKind = "non-positive"
	TooLarge         ValidationKind = "too-large"
)

// ValidationError is returned for malformed or out of range client input. It is
// always detected before any I/O happens.
type ValidationError struct {
	Kind  ValidationKind
	Input string
	// Limit is set for TooLarge.
	Limit int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NonPositive:
		return msgNonPositive
	case TooLarge:
		return fmt.Sprintf(msgTooLarge, e.Limit)
	default:
		return msgMissingOrInvalid
	}
}

// NotFoundError means the referenced source image does not exist or cannot be
// read. Blank and unsafe names end up here as well.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source image not found: %q", e.Name)
}

// ProcessingError wraps a codec or storage failure that happened while a
// thumbnail was being produced.
type ProcessingError struct {
	Key ThumbnailKey
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to process image %s: %v", e.Key, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
