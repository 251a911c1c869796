package arrutil

import (
	"math"
	"math/rand"
)

// Shuffle returns a randomly permuted copy of items using a Fisher-Yates
// walk from the last index down. The input is not modified.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleSeed returns a deterministically permuted copy of items: the same
// seed and input length always produce the same permutation. The draw at
// each step is the fractional part of sin(seed+i)*10000 scaled to [0, i] —
// an intentionally simple, non-cryptographic generator kept for
// reproducibility, not randomness quality.
func ShuffleSeed[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		x := math.Sin(float64(seed+int64(i))) * 10000
		frac := x - math.Floor(x)
		j := int(frac * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Swap returns a copy of items with the elements at indices i and j
// exchanged. Returns ErrIndexOutOfRange when either index falls outside
// [0, len).
func Swap[T any](items []T, i, j int) ([]T, error) {
	if i < 0 || i >= len(items) || j < 0 || j >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}
