package kdmedian

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/stretchr/testify/require"
)

// TestMomPartition_SmallScale exercises the parallel (momPartition) code
// path directly — the public Partition entry point only reaches it above
// exactMedianThreshold, which is too large to spin up in a unit test.
func TestMomPartition_SmallScale(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	buf := make([][]float64, 5000)
	for i := range buf {
		buf[i] = []float64{rng.Float64() * 100}
	}
	table := kdpoint.NewTable(buf, 1)
	pts := make([]kdpoint.Point[float64], len(buf))
	copy(pts, table.Points())

	left, pivot, right := momPartition(pts, 0)
	for _, p := range left {
		require.Less(t, p.At(0), pivot.At(0))
	}
	for _, p := range right {
		require.GreaterOrEqual(t, p.At(0), pivot.At(0))
	}
	require.Equal(t, len(buf), len(left)+1+len(right))
}

func TestChunkBounds_CoversRange(t *testing.T) {
	bounds := chunkBounds(97, 7)
	total := 0
	prev := 0
	for _, b := range bounds {
		require.Equal(t, prev, b[0])
		require.Greater(t, b[1], b[0])
		total += b[1] - b[0]
		prev = b[1]
	}
	require.Equal(t, 97, total)
	require.Equal(t, 97, prev)
}
