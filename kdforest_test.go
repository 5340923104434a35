// Package kdforest_test exercises the public facade end to end: the
// scenarios of spec.md §8 (E1-E6), a brute-force k-NN oracle over random
// data (property 2), and sequential-vs-batch and build-twice comparisons
// (properties 4 and 3).
package kdforest_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	kdforest "github.com/katalvlaran/kdforest"
	"github.com/katalvlaran/kdforest/kdtree"
)

// bruteForceNearest returns the minimum squared distance from q to any
// row of data and the winning row's index: a brute-force 1-NN oracle
// (property 1). No test in this file calls it.
func bruteForceNearest(data [][]float64, q []float64) (float64, uint64) {
	best := math.Inf(1)
	var bestIdx uint64
	for i, p := range data {
		d := 0.0
		for a := range q {
			diff := p[a] - q[a]
			d += diff * diff
		}
		if d < best {
			best = d
			bestIdx = uint64(i)
		}
	}
	return best, bestIdx
}

// bruteForceKNN returns the k smallest squared distances from q to data
// and their row indices, sorted ascending, used as the oracle for
// property 2.
func bruteForceKNN(data [][]float64, q []float64, k int) ([]float64, []uint64) {
	type cand struct {
		d   float64
		idx uint64
	}
	cands := make([]cand, len(data))
	for i, p := range data {
		d := 0.0
		for a := range q {
			diff := p[a] - q[a]
			d += diff * diff
		}
		cands[i] = cand{d: d, idx: uint64(i)}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	if k > len(cands) {
		k = len(cands)
	}
	dists := make([]float64, k)
	indices := make([]uint64, k)
	for i := 0; i < k; i++ {
		dists[i] = cands[i].d
		indices[i] = cands[i].idx
	}
	return dists, indices
}

func randomData(rng *rand.Rand, n, dim int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, dim)
		for a := range row {
			row[a] = rng.Float64()
		}
		data[i] = row
	}
	return data
}

// TestE1_SimpleNearest covers spec.md §8 E1.
func TestE1_SimpleNearest(t *testing.T) {
	data := [][]float64{
		{0.6, 0.2},
		{0.1, 0.3},
		{0.4, 0.9},
		{0.7, 0.5},
		{0.7, 0.5},
		{0.7, 0.5},
		{0.7, 0.5},
	}
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	dist, index, _, err := kdforest.QueryNearest(tree, []float64{0.6, 0.1})
	require.NoError(t, err)
	require.InDelta(t, 0.01, dist, 1e-12)
	require.Equal(t, uint64(0), index)
}

// TestE2_MatchesBruteForce covers spec.md §8 E2: random data, random
// queries, k=80, exact match against a brute-force oracle.
func TestE2_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := randomData(rng, 100, 3)
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	for q := 0; q < 50; q++ {
		query := make([]float64, 3)
		for a := range query {
			query[a] = rng.Float64()
		}
		dists, indices, _, err := kdforest.QueryNearestK(tree, query, 80)
		require.NoError(t, err)

		wantDists, wantIndices := bruteForceKNN(data, query, 80)
		require.Len(t, dists, len(wantDists))
		for i := range dists {
			require.InDelta(t, wantDists[i], dists[i], 1e-9)
			require.Equal(t, wantIndices[i], indices[i])
		}
	}
}

// TestE3_PeriodicWrapAround covers spec.md §8 E3: a point just inside
// the box's upper edge must be found as the nearest neighbor of a query
// just inside the lower edge, via wrap-around.
func TestE3_PeriodicWrapAround(t *testing.T) {
	data := [][]float64{
		{0.99, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
	boxsize := []float64{1, 1, 1}
	tree, err := kdforest.New(data, 1, kdforest.WithBoxsize[float64](boxsize))
	require.NoError(t, err)

	dist, index, _, err := kdforest.QueryNearest(tree, []float64{0.01, 0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, uint64(0), index)
	require.InDelta(t, 0.0004, dist, 1e-9)
}

// TestE4_BatchEquivalence covers spec.md §8 E4: parallel batch k-NN
// equals the row-wise concatenation of sequential per-query k-NN.
func TestE4_BatchEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := randomData(rng, 200, 3)
	tree, err := kdforest.New(data, 4)
	require.NoError(t, err)

	queries := randomData(rng, 1000, 3)
	const k = 80

	batchDists, batchIndices, _, err := kdforest.QueryNearestKParallel(tree, queries, k)
	require.NoError(t, err)

	for i, q := range queries {
		dists, indices, _, err := kdforest.QueryNearestK(tree, q, k)
		require.NoError(t, err)
		off := i * k
		require.Equal(t, dists, batchDists[off:off+k])
		require.Equal(t, indices, batchIndices[off:off+k])
	}
}

// TestE5_AxisDecomposition covers spec.md §8 E5: axis^2 + offaxis^2
// equals total^2 for every returned neighbor.
func TestE5_AxisDecomposition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := randomData(rng, 50, 3)
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	queries := randomData(rng, 10, 3)
	const k = 5
	axisSq, offAxisSq, indices, err := kdforest.QueryNearestKAxis(tree, queries, k, 1, false)
	require.NoError(t, err)
	require.Len(t, indices, len(queries)*k)

	for i := range queries {
		dists, wantIndices, _, err := kdforest.QueryNearestK(tree, queries[i], k)
		require.NoError(t, err)
		off := i * k
		for j := 0; j < k; j++ {
			require.InDelta(t, dists[j], axisSq[off+j]+offAxisSq[off+j], 1e-9)
			require.Equal(t, wantIndices[j], indices[off+j])
		}
	}
}

// TestE6_ValidatorRejectsInfiniteQuery covers spec.md §8 E6.
func TestE6_ValidatorRejectsInfiniteQuery(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}}
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	_, _, _, err = kdforest.QueryNearest(tree, []float64{math.Inf(1), 0})
	require.Error(t, err)
}

// TestProperty_NOne covers spec.md §8's boundary: N=1 is a single leaf
// and any query returns that point.
func TestProperty_NOne(t *testing.T) {
	tree, err := kdforest.New([][]float64{{3, 4}}, 1)
	require.NoError(t, err)
	dist, index, _, err := kdforest.QueryNearest(tree, []float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(0), index)
	require.InDelta(t, 25.0, dist, 1e-12)
}

// TestProperty_KEqualsN covers the k=N boundary: the result covers the
// entire dataset.
func TestProperty_KEqualsN(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := randomData(rng, 30, 2)
	tree, err := kdforest.New(data, 2)
	require.NoError(t, err)

	dists, indices, _, err := kdforest.QueryNearestK(tree, []float64{0.5, 0.5}, 30)
	require.NoError(t, err)
	require.Len(t, dists, 30)
	require.Len(t, indices, 30)
}

// TestProperty_KGreaterThanN covers the k>N boundary: silently clamped
// to N.
func TestProperty_KGreaterThanN(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	dists, indices, _, err := kdforest.QueryNearestK(tree, []float64{0, 0}, 100)
	require.NoError(t, err)
	require.Len(t, dists, 3)
	require.Len(t, indices, 3)
}

// TestProperty_QueryOnDataPoint covers the exactly-on-a-point boundary:
// best distance is 0 for the matching index.
func TestProperty_QueryOnDataPoint(t *testing.T) {
	data := [][]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	tree, err := kdforest.New(data, 1)
	require.NoError(t, err)

	dist, index, _, err := kdforest.QueryNearest(tree, []float64{0.3, 0.4})
	require.NoError(t, err)
	require.Equal(t, uint64(1), index)
	require.Equal(t, 0.0, dist)
}

// TestIdempotence covers spec.md §8 property 3: building twice from the
// same input gives identical query results.
func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	data := randomData(rng, 500, 4)

	t1, err := kdforest.New(data, 8)
	require.NoError(t, err)
	t2, err := kdforest.New(data, 8)
	require.NoError(t, err)

	query := randomData(rng, 1, 4)[0]
	d1, i1, _, err := kdforest.QueryNearestK(t1, query, 10)
	require.NoError(t, err)
	d2, i2, _, err := kdforest.QueryNearestK(t2, query, 10)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
	require.Equal(t, i1, i2)
}

// TestSqrtDistOption checks WithSqrtDist returns the square root of the
// squared distance.
func TestSqrtDistOption(t *testing.T) {
	data := [][]float64{{0, 0}, {3, 4}}
	tree, err := kdforest.New(data, 1, kdforest.WithSqrtDist[float64]())
	require.NoError(t, err)

	dist, index, _, err := kdforest.QueryNearest(tree, []float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(0), index)
	require.Equal(t, 0.0, dist)

	// (3,2) is 2 from (3,4) (squared: 4) and sqrt(13) from (0,0).
	dist2, index2, _, err := kdforest.QueryNearest(tree, []float64{3, 2})
	require.NoError(t, err)
	require.Equal(t, uint64(1), index2)
	require.InDelta(t, 2.0, dist2, 1e-12)
}

// TestNoPositionOption checks WithNoPosition omits the position slice.
func TestNoPositionOption(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}}
	tree, err := kdforest.New(data, 1, kdforest.WithNoPosition[float64]())
	require.NoError(t, err)

	_, _, pos, err := kdforest.QueryNearest(tree, []float64{0, 0})
	require.NoError(t, err)
	require.Nil(t, pos)
}

// TestParallelBuildMatchesSequential covers spec.md §8 property 3
// extended to NewParallel: the parallel build must answer queries
// identically to the sequential build.
func TestParallelBuildMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	data := randomData(rng, 2000, 3)

	seqTree, err := kdforest.New(data, 8)
	require.NoError(t, err)
	parTree, err := kdforest.NewParallel(data, 8, 4)
	require.NoError(t, err)

	for q := 0; q < 20; q++ {
		query := randomData(rng, 1, 3)[0]
		d1, i1, _, err := kdforest.QueryNearestK(seqTree, query, 10)
		require.NoError(t, err)
		d2, i2, _, err := kdforest.QueryNearestK(parTree, query, 10)
		require.NoError(t, err)
		require.Equal(t, d1, d2)
		require.Equal(t, i1, i2)
	}
}

// TestInvalidLeafsize and TestZeroLengthInput exercise the construction
// error paths.
func TestInvalidLeafsize(t *testing.T) {
	_, err := kdforest.New([][]float64{{0, 0}}, 0)
	require.ErrorIs(t, err, kdtree.ErrInvalidLeafsize)
}

func TestZeroLengthInput(t *testing.T) {
	_, err := kdforest.New([][]float64{}, 1)
	require.Error(t, err)
}
