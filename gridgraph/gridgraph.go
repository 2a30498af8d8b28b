package gridgraph

import (
	"github.com/katalvlaran/ragmerge/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of non-negative labels. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeLabel on a label < 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, l := range cells[y] {
			if l < 0 {
				return nil, ErrNegativeLabel
			}
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ToRAG converts the label grid into a region adjacency graph.
// Each distinct label becomes a node with the same ID and label set {label};
// each pair of labels that touch under gg.Conn becomes an edge weighted by
// weight(a, b, boundary) with a < b. A nil weight means UnitWeight.
// Complexity: O(W×H×d + E log V), Memory: O(V + E).
func (gg *GridGraph) ToRAG(weight WeightFunc) (*core.Graph, error) {
	if weight == nil {
		weight = UnitWeight
	}
	regions := gg.Regions()
	g := core.NewGraph(core.WithCapacity(len(regions)))
	for _, l := range gg.Labels() {
		if err := g.AddNode(l); err != nil {
			return nil, err
		}
	}
	for pair, n := range gg.Boundaries() {
		if _, err := g.AddEdge(pair[0], pair[1], weight(pair[0], pair[1], n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Flatten returns the labels in row-major order.
func (gg *GridGraph) Flatten() []int {
	out := make([]int, 0, gg.Width*gg.Height)
	for _, row := range gg.CellValues {
		out = append(out, row...)
	}

	return out
}

// Reshape turns a row-major slice of Width×Height values back into rows.
// Returns ErrShapeMismatch on a length mismatch.
func (gg *GridGraph) Reshape(flat []int) ([][]int, error) {
	if len(flat) != gg.Width*gg.Height {
		return nil, ErrShapeMismatch
	}
	out := make([][]int, gg.Height)
	for y := range out {
		out[y] = make([]int, gg.Width)
		copy(out[y], flat[y*gg.Width:(y+1)*gg.Width])
	}

	return out, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
