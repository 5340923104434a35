package kdbatch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdforest/kdbatch"
	"github.com/katalvlaran/kdforest/kdquery"
	"github.com/katalvlaran/kdforest/kdtree"
)

func randomRows(rng *rand.Rand, n, dim int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, dim)
		for a := range row {
			row[a] = rng.Float64()
		}
		rows[i] = row
	}
	return rows
}

func TestQueryManyK_MatchesSequentialPerQuery(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	data := randomRows(rng, 300, 3)
	tree, err := kdtree.New(data, 4)
	require.NoError(t, err)

	queries := randomRows(rng, 200, 3)
	const k = 12

	res, err := kdbatch.QueryManyK(tree, queries, k)
	require.NoError(t, err)
	require.Len(t, res.Dists, len(queries)*k)

	for i, q := range queries {
		want, err := kdquery.QueryNearestK(tree, q, k)
		require.NoError(t, err)
		off := i * k
		require.Equal(t, want.Dists, res.Dists[off:off+k])
		require.Equal(t, want.Indices, res.Indices[off:off+k])
	}
}

func TestQueryManyK_RejectsZeroK(t *testing.T) {
	tree, err := kdtree.New([][]float64{{0}, {1}}, 1)
	require.NoError(t, err)
	_, err = kdbatch.QueryManyK(tree, [][]float64{{0}}, 0)
	require.ErrorIs(t, err, kdquery.ErrInvalidK)
}

func TestQueryManyK_FailsWholeBatchOnOneBadQuery(t *testing.T) {
	tree, err := kdtree.New([][]float64{{0, 0}, {1, 1}}, 1)
	require.NoError(t, err)

	queries := [][]float64{{0, 0}, {1}} // second row has the wrong dimension
	_, err = kdbatch.QueryManyK(tree, queries, 1)
	require.Error(t, err)
}

func TestQueryManyK_PeriodicDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	boxsize := []float64{1, 1}
	data := randomRows(rng, 40, 2)
	tree, err := kdtree.New(data, 2, kdtree.WithBoxsize[float64](boxsize))
	require.NoError(t, err)

	queries := randomRows(rng, 25, 2)
	res, err := kdbatch.QueryManyK(tree, queries, 3)
	require.NoError(t, err)
	require.Len(t, res.Dists, len(queries)*3)
}

func TestQueryManyKAxis_MatchesPerQuery(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	data := randomRows(rng, 100, 3)
	tree, err := kdtree.New(data, 2)
	require.NoError(t, err)

	queries := randomRows(rng, 15, 3)
	const k, axis = 6, 2

	axisSq, offAxisSq, indices, err := kdbatch.QueryManyKAxis(tree, queries, k, axis, false)
	require.NoError(t, err)
	require.Len(t, axisSq, len(queries)*k)

	for i, q := range queries {
		want, err := kdquery.QueryNearestKAxis(tree, q, k, axis, false)
		require.NoError(t, err)
		off := i * k
		require.Equal(t, want.AxisSq, axisSq[off:off+k])
		require.Equal(t, want.OffAxisSq, offAxisSq[off:off+k])
		require.Equal(t, want.Indices, indices[off:off+k])
	}
}

func TestQueryManyKAxis_RejectsAxisOutOfRange(t *testing.T) {
	tree, err := kdtree.New([][]float64{{0, 0}, {1, 1}}, 1)
	require.NoError(t, err)
	_, _, _, err = kdbatch.QueryManyKAxis(tree, [][]float64{{0, 0}}, 1, 5, false)
	require.ErrorIs(t, err, kdquery.ErrInvalidAxis)
}

func TestQueryManyKAxis_NoIndexOmitsIndices(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	tree, err := kdtree.New(data, 1)
	require.NoError(t, err)

	_, _, indices, err := kdbatch.QueryManyKAxis(tree, [][]float64{{0, 0}}, 2, 0, true)
	require.NoError(t, err)
	require.Nil(t, indices)
}
