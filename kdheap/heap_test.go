package kdheap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kdforest/kdheap"
	"github.com/katalvlaran/kdforest/kdpoint"
	"github.com/stretchr/testify/require"
)

// testPoints backs cand()'s synthetic points; index is all that matters
// for these heap-ordering tests, so every row shares coordinate (0,).
var testPoints = kdpoint.NewTable([][]float64{{0}, {0}, {0}, {0}, {0}}, 1).Points()

func cand(dist2 float64, idx uint64) kdheap.Candidate[float64] {
	return kdheap.Candidate[float64]{Dist2: dist2, Point: testPoints[idx]}
}

func TestHeap_WorstIsInfWhenEmpty(t *testing.T) {
	h := kdheap.New[float64](3)
	require.True(t, math.IsInf(float64(h.Worst()), 1))
	require.Equal(t, 0, h.Len())
}

func TestHeap_PushBelowCapacity(t *testing.T) {
	h := kdheap.New[float64](3)
	h.Push(cand(5, 1))
	h.Push(cand(2, 2))
	require.Equal(t, 2, h.Len())
	require.True(t, math.IsInf(float64(h.Worst()), 1), "worst stays +Inf until capacity real entries pushed")
}

func TestHeap_EvictsWorstAtCapacity(t *testing.T) {
	h := kdheap.New[float64](2)
	h.Push(cand(5, 1))
	h.Push(cand(2, 2))
	require.Equal(t, 5.0, h.Worst())

	h.Push(cand(1, 3)) // better than worst(5) -> replaces it
	require.Equal(t, 2, h.Len())
	require.Equal(t, 2.0, h.Worst())

	h.Push(cand(9, 4)) // worse than worst(2) -> dropped
	require.Equal(t, 2.0, h.Worst())
}

func TestHeap_DrainSorted(t *testing.T) {
	h := kdheap.New[float64](3)
	h.Push(cand(5, 1))
	h.Push(cand(1, 2))
	h.Push(cand(3, 3))
	out := h.DrainSorted()
	require.Len(t, out, 3)
	require.Equal(t, 1.0, out[0].Dist2)
	require.Equal(t, 3.0, out[1].Dist2)
	require.Equal(t, 5.0, out[2].Dist2)
}

func TestHeap_DrainSorted_FewerThanCapacity(t *testing.T) {
	h := kdheap.New[float64](5)
	h.Push(cand(5, 1))
	h.Push(cand(1, 2))
	out := h.DrainSorted()
	require.Len(t, out, 2)
	require.Equal(t, 1.0, out[0].Dist2)
	require.Equal(t, 5.0, out[1].Dist2)
}

func TestHeap_Reset(t *testing.T) {
	h := kdheap.New[float64](2)
	h.Push(cand(5, 1))
	h.Push(cand(2, 2))
	h.Reset()
	require.Equal(t, 0, h.Len())
	require.True(t, math.IsInf(float64(h.Worst()), 1))
}
