package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrCorrupt indicates a header field held an impossible value.
	ErrCorrupt = errors.New("format: corrupt block header")
)
