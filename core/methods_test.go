package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/pqueue"
)

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(3))
	require.NoError(t, g.AddNode(3), "AddNode is idempotent")
	require.ErrorIs(t, g.AddNode(-1), core.ErrNegativeID)
	require.ErrorIs(t, g.AddNode(4, 1, -2), core.ErrNegativeID)

	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, n.LabelSlice(), "default label set is {id}")
	assert.NotNil(t, n.Metadata)

	require.NoError(t, g.AddNode(7, 10, 11))
	n, err = g.Node(7)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, n.LabelSlice())

	assert.Equal(t, 8, g.NextID(), "nextID moves past the largest ID seen")
	assert.Equal(t, []int{3, 7}, g.NodeIDs())
	assert.Equal(t, 2, g.NodeCount())

	_, err = g.Node(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAllocateIDNeverReuses(t *testing.T) {
	g := newGraph(t, []int{0, 1, 2}, nil)
	id := g.AllocateID()
	assert.Equal(t, 3, id)
	require.NoError(t, g.RemoveNode(2))
	assert.Equal(t, 4, g.AllocateID(), "removed IDs are not handed out again")

	g2 := core.NewGraph(core.WithFirstID(100))
	assert.Equal(t, 100, g2.AllocateID())
}

func TestAddEdgeUpsert(t *testing.T) {
	g := newGraph(t, []int{1, 2}, nil)

	e, err := g.AddEdge(2, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, e.U, "endpoints are normalised U < V")
	assert.Equal(t, 2, e.V)
	e.Metadata["tag"] = "x"

	e2, err := g.AddEdge(1, 2, 0.9)
	require.NoError(t, err)
	assert.Same(t, e, e2, "re-adding updates the same record")
	assert.Equal(t, 0.9, e2.Weight)
	assert.Equal(t, "x", e2.Metadata["tag"])
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge(1, 1, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(1, 2, math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge(1, 42, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdgesAndNeighbors(t *testing.T) {
	g := newDiamond(t)
	assert.Equal(t, 4, g.EdgeCount())

	var pairs [][2]int
	for _, e := range g.Edges() {
		pairs = append(pairs, [2]int{e.U, e.V})
	}
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}}, pairs)

	nbs, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, nbs)

	inc, err := g.IncidentEdges(3)
	require.NoError(t, err)
	require.Len(t, inc, 3)
	assert.Equal(t, 1, inc[0].Other(3))
	assert.Equal(t, 4, inc[2].Other(3))

	d, err := g.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = g.Neighbors(9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree(9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestRemoveEdgeAndNode(t *testing.T) {
	g := newDiamond(t)

	require.NoError(t, g.RemoveEdge(3, 1))
	assert.False(t, g.HasEdge(1, 3))
	require.ErrorIs(t, g.RemoveEdge(1, 3), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveNode(3))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 4))
	assert.Equal(t, 1, g.EdgeCount())
	nbs, err := g.Neighbors(4)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	require.ErrorIs(t, g.RemoveNode(3), core.ErrNodeNotFound)
	_, err = g.Edge(3, 4)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestStatsAndLabels(t *testing.T) {
	g := newDiamond(t)
	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, 4, s.LabelCount)
	assert.Equal(t, 5, s.NextID)
	assert.Equal(t, 0.05, s.MinWeight)
	assert.Equal(t, 5.0, s.MaxWeight)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Labels())

	empty := core.NewGraph().Stats()
	assert.Zero(t, empty.MinWeight)
	assert.Zero(t, empty.MaxWeight)
}

func TestSetRef(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1))
	require.NoError(t, g.AddNode(2))
	e, err := g.AddEdge(1, 2, 0.5)
	require.NoError(t, err)
	require.Equal(t, pqueue.None, g.Ref(e))

	q := pqueue.New(2)
	h1 := q.Push(0.5, 1, 2)
	assert.Equal(t, pqueue.None, g.SetRef(e, h1))
	h2 := q.Push(0.5, 1, 2)
	assert.Equal(t, h1, g.SetRef(e, h2))
	assert.Equal(t, h2, g.Ref(e))

	// an in-place weight update keeps the handle
	_, err = g.AddEdge(2, 1, 0.7)
	require.NoError(t, err)
	assert.Equal(t, h2, g.Ref(e))
}
