package strutil

// Apply threads value through each transform in order and returns the final
// result. Handy for ad-hoc cleanup chains, e.g. normalizing then lowercasing
// a piece of user input in one call.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose binds a transform chain into a single function, so a cleanup
// sequence can be declared once and reused across call sites.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
