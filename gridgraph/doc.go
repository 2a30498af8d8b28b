// Package gridgraph treats a 2D label image as a grid of cells and derives a
// region adjacency graph from it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int of non-negative labels.
//   - Regions groups cells by label; Boundaries counts touching cell pairs
//     between every two labels.
//   - ToRAG builds a *core.Graph with one node per label and one weighted
//     edge per pair of touching labels, ready for merge.Run.
//   - Flatten/Reshape convert between rows and the row-major slices that
//     merge.Contract and relabel.Remap consume.
//
// Complexity:
//
//   - Regions:    O(W×H), Memory: O(W×H).
//   - Boundaries: O(W×H×d), Memory: O(E)    (d = number of neighbors, 4 or 8).
//   - ToRAG:      O(W×H×d + E log V), Memory: O(V + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeLabel: a cell label is below zero.
//   - ErrShapeMismatch: Reshape input of the wrong length.
package gridgraph
