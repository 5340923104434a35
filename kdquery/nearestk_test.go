package kdquery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdforest/kdquery"
	"github.com/katalvlaran/kdforest/kdtree"
)

func TestRunnerK_TraverseAccumulatesAcrossCalls(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {2, 2}, {10, 10}}
	tree, err := kdtree.New(data, 1)
	require.NoError(t, err)

	runner := kdquery.NewRunnerK(tree, 2)
	runner.Reset()
	runner.Traverse([]float64{0, 0})
	worstAfterFirst := runner.Worst()

	// A farther probe replayed on the same runner must not regress the
	// accumulated k-best state.
	runner.Traverse([]float64{100, 100})
	require.LessOrEqual(t, runner.Worst(), worstAfterFirst)
}

func TestNewRunnerK_ClampsKToTableLen(t *testing.T) {
	tree, err := kdtree.New([][]float64{{0}, {1}, {2}}, 1)
	require.NoError(t, err)

	runner := kdquery.NewRunnerK(tree, 99)
	require.Equal(t, 3, runner.K())
}

func TestRunnerK_CurrentResultDrainsHeapOnce(t *testing.T) {
	data := [][]float64{{0}, {1}, {2}}
	tree, err := kdtree.New(data, 1)
	require.NoError(t, err)

	runner := kdquery.NewRunnerK(tree, 2)
	runner.Reset()
	runner.Traverse([]float64{0})
	first := runner.CurrentResult()
	require.Len(t, first.Dists, 2)

	// The heap was drained by the prior CurrentResult call; without an
	// intervening Reset+Traverse there is nothing left to report.
	second := runner.CurrentResult()
	require.Empty(t, second.Dists)
}
