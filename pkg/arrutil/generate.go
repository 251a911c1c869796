package arrutil

// Range returns the ascending integers from start (inclusive) to end
// (exclusive) with step 1. Equal or inverted bounds are invalid and return
// ErrInvalidRange, as are spans too wide to fit in a single slice.
//
//	arrutil.Range(0, 5) // [0 1 2 3 4]
func Range(start, end int) ([]int, error) {
	if start >= end {
		return nil, ErrInvalidRange
	}
	span := end - start
	if span < 0 {
		// the span exceeds MaxInt elements and can never be allocated
		return nil, ErrInvalidRange
	}
	out := make([]int, 0, span)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out, nil
}
