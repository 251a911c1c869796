package arrutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lennert-vangeert/utilities/pkg/arrutil"
)

func TestChunk(t *testing.T) {
	t.Run("partitions with a short final chunk", func(t *testing.T) {
		chunks, err := arrutil.Chunk([]int{1, 2, 3, 4, 5}, 2)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	})

	t.Run("size equal to length yields one chunk", func(t *testing.T) {
		chunks, err := arrutil.Chunk([]string{"a", "b", "c"}, 3)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b", "c"}}, chunks)
	})

	t.Run("oversized chunk covers everything", func(t *testing.T) {
		chunks, err := arrutil.Chunk([]int{1, 2}, 10)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}}, chunks)
	})

	t.Run("maximum size does not overflow", func(t *testing.T) {
		chunks, err := arrutil.Chunk([]int{1, 2}, math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}}, chunks)
	})

	t.Run("empty input yields no chunks", func(t *testing.T) {
		chunks, err := arrutil.Chunk([]int{}, 4)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("zero size is rejected", func(t *testing.T) {
		_, err := arrutil.Chunk([]int{1, 2, 3}, 0)
		require.ErrorIs(t, err, arrutil.ErrInvalidChunkSize)
	})

	t.Run("negative size is rejected", func(t *testing.T) {
		_, err := arrutil.Chunk([]int{1, 2, 3}, -2)
		require.ErrorIs(t, err, arrutil.ErrInvalidChunkSize)
	})

	t.Run("chunks are independent copies", func(t *testing.T) {
		items := []int{1, 2, 3, 4}
		chunks, err := arrutil.Chunk(items, 2)
		require.NoError(t, err)

		chunks[0][0] = 99
		assert.Equal(t, []int{1, 2, 3, 4}, items)
	})
}
