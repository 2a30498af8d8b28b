// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Provide small, deterministic RAG fixtures.
//   - Keep the arithmetic of the reweight callbacks trivial so expected
//     weights can be written down by hand.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragmerge/core"
)

// wEdge is a compact edge literal for fixtures.
type wEdge struct {
	U, V int
	W    float64
}

// newGraph builds a graph with nodes ids (label set {id} each) and edges.
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

// newDiamond returns the four-node graph
//
//	1 ─0.1─ 2
//	│ \     │
//	0.2  ·  5
//	│     \ │
//	3 ──────┘   and 3 ─0.05─ 4
func newDiamond(t testing.TB) *core.Graph {
	return newGraph(t, []int{1, 2, 3, 4}, []wEdge{
		{1, 2, 0.1}, {2, 3, 5}, {1, 3, 0.2}, {3, 4, 0.05},
	})
}

// minWeight keeps the lighter of the two candidate edges to n.
func minWeight(g *core.Graph, src, dst, n int) (float64, error) {
	best := -1.0
	for _, end := range []int{src, dst} {
		e, err := g.Edge(end, n)
		if err != nil {
			continue
		}
		if best < 0 || e.Weight < best {
			best = e.Weight
		}
	}

	return best, nil
}

// weightsOf returns the weight of every edge keyed by its endpoints.
func weightsOf(g *core.Graph) map[[2]int]float64 {
	out := make(map[[2]int]float64)
	for _, e := range g.Edges() {
		out[[2]int{e.U, e.V}] = e.Weight
	}

	return out
}
