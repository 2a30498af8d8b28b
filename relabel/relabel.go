package relabel

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/ragmerge/core"
)

// Sentinel errors returned by the remapper.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("relabel: graph is nil")

	// ErrNegativeLabel indicates a label below zero.
	ErrNegativeLabel = errors.New("relabel: negative label")

	// ErrDuplicateLabel indicates a label held by more than one surviving node.
	ErrDuplicateLabel = errors.New("relabel: label present in more than one node")

	// ErrLabelCoverageGap indicates an input label that no surviving node holds.
	ErrLabelCoverageGap = errors.New("relabel: label not covered by any node")
)

// Unassigned marks table slots whose label no surviving node holds.
const Unassigned = -1

// Table builds the label → group index lookup table for g.
//
// The table has length maxLabel+1; slots for labels that no node holds are
// Unassigned. Groups are numbered in g.Nodes() order, so Table is a pure
// function of the graph state.
func Table(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()

	maxLabel := -1
	for _, n := range nodes {
		if n.Labels.Len() == 0 {
			continue
		}
		lo, _ := n.Labels.Min()
		if lo < 0 {
			return nil, pkgerrors.Wrapf(ErrNegativeLabel, "node %d label %d", n.ID, lo)
		}
		if hi, _ := n.Labels.Max(); hi > maxLabel {
			maxLabel = hi
		}
	}

	table := make([]int, maxLabel+1)
	for i := range table {
		table[i] = Unassigned
	}
	for ix, n := range nodes {
		var dup error
		n.Labels.Scan(func(l int) bool {
			if table[l] != Unassigned {
				dup = pkgerrors.Wrapf(ErrDuplicateLabel, "label %d in groups %d and %d", l, table[l], ix)
				return false
			}
			table[l] = ix
			return true
		})
		if dup != nil {
			return nil, dup
		}
	}

	return table, nil
}

// Remap returns a new slice where every label is replaced by the index of
// the surviving node that holds it. labels is not modified.
func Remap(g *core.Graph, labels []int) ([]int, error) {
	table, err := Table(g)
	if err != nil {
		return nil, err
	}

	return apply(table, labels)
}

// RemapGrid is Remap for a 2-D label image.
func RemapGrid(g *core.Graph, labels [][]int) ([][]int, error) {
	table, err := Table(g)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(labels))
	for y, row := range labels {
		if out[y], err = apply(table, row); err != nil {
			return nil, pkgerrors.Wrapf(err, "row %d", y)
		}
	}

	return out, nil
}

func apply(table, labels []int) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		if l < 0 {
			return nil, pkgerrors.Wrapf(ErrNegativeLabel, "index %d label %d", i, l)
		}
		if l >= len(table) || table[l] == Unassigned {
			return nil, pkgerrors.Wrapf(ErrLabelCoverageGap, "index %d label %d", i, l)
		}
		out[i] = table[l]
	}

	return out, nil
}
