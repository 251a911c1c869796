package arrutil

// Map applies fn to every element and returns the results as a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns a new slice holding the elements for which fn returns
// true, in their original order.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items left to right into a single value of type U. The
// accumulator starts at initial and is updated by fn for every element.
//
//	sum := arrutil.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// Pluck extracts a single value of type U from every element and returns
// the extracted values in order.
//
//	names := arrutil.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
