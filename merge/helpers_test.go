package merge_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragmerge/core"
)

type wEdge struct {
	U, V int
	W    float64
}

func newGraph(t testing.TB, ids []int, edges []wEdge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.U, e.V, e.W)
		require.NoError(t, err)
	}

	return g
}

// newDiamond is the four-region scenario:
// (1,2,0.1) (2,3,5) (1,3,0.2) (3,4,0.05).
func newDiamond(t testing.TB) *core.Graph {
	return newGraph(t, []int{1, 2, 3, 4}, []wEdge{
		{1, 2, 0.1}, {2, 3, 5}, {1, 3, 0.2}, {3, 4, 0.05},
	})
}

// randomGraph builds n regions labelled 0..n-1 with roughly density·n²/2
// edges of weight in [0, 1).
func randomGraph(t testing.TB, rng *rand.Rand, n int, density float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 0; id < n; id++ {
		require.NoError(t, g.AddNode(id))
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < density {
				_, err := g.AddEdge(u, v, rng.Float64())
				require.NoError(t, err)
			}
		}
	}

	return g
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
