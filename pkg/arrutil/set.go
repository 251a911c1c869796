package arrutil

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the elements of a that also appear anywhere in b,
// keeping a's order and a's duplicates. Membership is checked against the
// distinct values of b.
func Intersection[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// Compact returns a new slice with zero-valued elements removed, preserving
// the order of the remaining elements. For pointer, interface, map and
// slice element types this drops nils.
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Flatten concatenates one level of nested slices into a single slice,
// preserving order.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, group := range items {
		total += len(group)
	}
	out := make([]T, 0, total)
	for _, group := range items {
		out = append(out, group...)
	}
	return out
}
