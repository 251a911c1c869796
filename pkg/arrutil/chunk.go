package arrutil

// Chunk partitions items into consecutive slices of size elements each; the
// final chunk may be shorter. Chunks are copies, so modifying them does not
// affect the input. Returns ErrInvalidChunkSize unless size > 0.
//
//	arrutil.Chunk([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	// len(items)/size+1 over-allocates by at most one slot but cannot
	// overflow for huge sizes the way the rounding-up form would.
	chunks := make([][]T, 0, len(items)/size+1)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
