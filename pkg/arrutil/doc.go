// Package arrutil provides generic, allocation-honest helper functions for
// working with slices.
//
// The helpers cover the everyday slice operations: transformation (Map,
// Filter, Reduce, Pluck), searching (Find, FindIndex, Contains), set-like
// operations (Unique, Intersection, Compact, Flatten), grouping (GroupBy),
// partitioning (Chunk), ordering (Shuffle, ShuffleSeed, Swap, Reverse) and
// generation (Range).
//
// No function mutates its input: every slice result is freshly allocated,
// so callers keep full ownership of their arguments. Operations with
// semantically invalid auxiliary arguments (a non-positive chunk size, an
// out-of-bounds swap index, an empty or inverted range) return sentinel
// errors that callers can match with errors.Is:
//
//	chunks, err := arrutil.Chunk(items, size)
//	if errors.Is(err, arrutil.ErrInvalidChunkSize) {
//	    // ...
//	}
//
// Everything else either succeeds or reports absence through a comma-ok
// result (Find) or a -1 index (FindIndex); a merely-absent match is never
// an error.
package arrutil
