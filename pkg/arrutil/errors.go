package arrutil

import "errors"

// Sentinel errors returned by slice operations with invalid auxiliary
// arguments.
var (
	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arrutil: chunk size must be greater than 0")

	// ErrIndexOutOfRange is returned when Swap receives an index outside
	// [0, len).
	ErrIndexOutOfRange = errors.New("arrutil: index out of range")

	// ErrInvalidRange is returned when Range is called with start >= end.
	ErrInvalidRange = errors.New("arrutil: range start must be less than end")
)
