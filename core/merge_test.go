package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/pqueue"
)

func TestMergeNodesInPlace(t *testing.T) {
	g := newDiamond(t)
	keep, err := g.Edge(2, 3)
	require.NoError(t, err)
	keep.Ref = pqueue.Handle(77)

	var calls [][3]int
	rw := func(g *core.Graph, src, dst, n int) (float64, error) {
		calls = append(calls, [3]int{src, dst, n})
		require.True(t, g.HasNode(src), "src is alive during reweight")
		return minWeight(g, src, dst, n)
	}
	survivor, err := g.MergeNodes(4, 3, rw)
	require.NoError(t, err)
	assert.Equal(t, 3, survivor)
	assert.Equal(t, [][3]int{{4, 3, 1}, {4, 3, 2}}, calls, "neighbors visited ascending")

	assert.False(t, g.HasNode(4))
	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, n.LabelSlice())

	e, err := g.Edge(2, 3)
	require.NoError(t, err)
	assert.Same(t, keep, e, "existing edge is updated in place")
	assert.Equal(t, pqueue.Handle(77), e.Ref)

	assert.Equal(t, map[[2]int]float64{{1, 2}: 0.1, {1, 3}: 0.2, {2, 3}: 5}, weightsOf(g))
}

func TestMergeNodesCreatesMissingEdges(t *testing.T) {
	// 1 - 2 - 3 : merging 2 into 1 must create {1,3}.
	g := newGraph(t, []int{1, 2, 3}, []wEdge{{1, 2, 1}, {2, 3, 4}})
	survivor, err := g.MergeNodes(2, 1, minWeight)
	require.NoError(t, err)
	assert.Equal(t, 1, survivor)

	e, err := g.Edge(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, e.Weight)
	assert.Equal(t, pqueue.None, e.Ref)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestMergeNodesErrors(t *testing.T) {
	g := newDiamond(t)
	_, err := g.MergeNodes(1, 2, nil)
	require.ErrorIs(t, err, core.ErrNilReweight)
	_, err = g.MergeNodes(1, 1, minWeight)
	require.ErrorIs(t, err, core.ErrSameNode)
	_, err = g.MergeNodes(1, 9, minWeight)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	boom := errors.New("boom")
	_, err = g.MergeNodes(1, 2, func(*core.Graph, int, int, int) (float64, error) { return 0, boom })
	require.ErrorIs(t, err, boom, "callback errors propagate unchanged")
	assert.True(t, g.HasNode(1), "src survives a failed merge")

	_, err = g.MergeNodes(1, 2, func(*core.Graph, int, int, int) (float64, error) { return math.NaN(), nil })
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestDuplicateNode(t *testing.T) {
	g := newDiamond(t)
	n3, err := g.Node(3)
	require.NoError(t, err)
	n3.Metadata["count"] = 9

	dup, err := g.DuplicateNode(3)
	require.NoError(t, err)
	assert.Equal(t, 5, dup)
	assert.True(t, g.HasNode(3), "original is left for the caller to remove")

	d, err := g.Node(dup)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, d.LabelSlice())
	assert.Equal(t, 9, d.Metadata["count"])
	d.Labels.Insert(42)
	assert.Equal(t, []int{3}, n3.LabelSlice(), "label sets are not shared")

	nbs, err := g.Neighbors(dup)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, nbs)
	for _, nb := range nbs {
		orig, err := g.Edge(3, nb)
		require.NoError(t, err)
		cp, err := g.Edge(dup, nb)
		require.NoError(t, err)
		assert.Equal(t, orig.Weight, cp.Weight)
	}

	require.NoError(t, g.RemoveNode(3))
	_, err = g.Node(3)
	require.ErrorIs(t, err, core.ErrNodeNotFound, "retired identity fails fast")

	_, err = g.DuplicateNode(3)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestCloneIsIndependent(t *testing.T) {
	g := newDiamond(t)
	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	e.Ref = pqueue.Handle(5)

	c := g.Clone()
	assert.Equal(t, g.NodeIDs(), c.NodeIDs())
	assert.Equal(t, weightsOf(g), weightsOf(c))
	assert.Equal(t, g.NextID(), c.NextID())

	ce, err := c.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, pqueue.None, ce.Ref, "queue refs do not travel with a clone")

	_, err = c.MergeNodes(4, 3, minWeight)
	require.NoError(t, err)
	assert.True(t, g.HasNode(4), "source graph untouched")
	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, n.LabelSlice())
}
