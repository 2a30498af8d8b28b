package relabel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/relabel"
)

// groups builds a graph whose node i holds the labels in sets[i]; node IDs
// are given explicitly so iteration order can be controlled.
func groups(t *testing.T, ids []int, sets [][]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, sets[i]...))
	}

	return g
}

func TestTable(t *testing.T) {
	g := groups(t, []int{7, 2}, [][]int{{0, 3}, {1, 5}})
	table, err := relabel.Table(g)
	require.NoError(t, err)
	// node 2 comes first (ascending ID) and gets index 0.
	assert.Equal(t, []int{1, 0, relabel.Unassigned, 1, relabel.Unassigned, 0}, table)
}

func TestRemap(t *testing.T) {
	g := groups(t, []int{10, 11}, [][]int{{1, 2}, {3}})
	labels := []int{3, 1, 2, 2, 3}
	before := append([]int(nil), labels...)

	out, err := relabel.Remap(g, labels)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0, 1}, out)
	assert.Equal(t, before, labels, "input is not mutated")

	again, err := relabel.Remap(g, labels)
	require.NoError(t, err)
	assert.Equal(t, out, again, "remap is idempotent for a fixed graph")
}

func TestRemapGrid(t *testing.T) {
	g := groups(t, []int{0, 1}, [][]int{{0}, {1, 2}})
	out, err := relabel.RemapGrid(g, [][]int{{0, 1}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, out)

	_, err = relabel.RemapGrid(g, [][]int{{0}, {9}})
	require.ErrorIs(t, err, relabel.ErrLabelCoverageGap)
}

func TestRemapErrors(t *testing.T) {
	_, err := relabel.Remap(nil, []int{0})
	require.ErrorIs(t, err, relabel.ErrNilGraph)

	g := groups(t, []int{0, 1}, [][]int{{0, 1}, {1}})
	_, err = relabel.Table(g)
	require.ErrorIs(t, err, relabel.ErrDuplicateLabel)

	g = groups(t, []int{0, 1}, [][]int{{0}, {2}})
	_, err = relabel.Remap(g, []int{0, 1, 2})
	require.ErrorIs(t, err, relabel.ErrLabelCoverageGap, "label 1 sits in a gap of the table")
	_, err = relabel.Remap(g, []int{0, 3})
	require.ErrorIs(t, err, relabel.ErrLabelCoverageGap, "label beyond the table")
	_, err = relabel.Remap(g, []int{-1})
	require.ErrorIs(t, err, relabel.ErrNegativeLabel)
}

func TestRemapEmpty(t *testing.T) {
	out, err := relabel.Remap(core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
