package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrVersion indicates a snapshot written by an incompatible version.
	ErrVersion = errors.New("format: unsupported version")
	// ErrLimit indicates a count or length beyond the configured limits.
	ErrLimit = errors.New("format: limit exceeded")
	// ErrUnsupported indicates the structure or feature is not yet supported.
	ErrUnsupported = errors.New("format: unsupported feature")
)
