package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D label image as a graph of cells. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the label of cell (x, y).
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}

// WeightFunc returns the initial weight of the edge between regions a and b,
// given the number of adjacent cell pairs along their shared boundary.
type WeightFunc func(a, b, boundary int) float64

// UnitWeight gives every adjacency weight 1.
func UnitWeight(_, _, _ int) float64 { return 1 }
