package arrutil

// GroupBy groups items by the comparable key K extracted by fn. Elements
// within each group keep their input order; the map itself carries no key
// order.
//
//	byDept := arrutil.GroupBy(employees, func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
