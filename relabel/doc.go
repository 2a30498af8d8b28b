// Package relabel translates the surviving nodes of a contracted region
// adjacency graph back into a flat label array.
//
// Every surviving node receives a sequential index 0..K-1 in the graph's own
// iteration order (ascending node ID). A lookup table indexed by original
// label maps each label to the index of the node whose label set contains
// it, and Remap applies that table elementwise.
//
// Errors:
//
//	ErrNilGraph         – graph pointer is nil.
//	ErrNegativeLabel    – a label below zero in the graph or the input.
//	ErrDuplicateLabel   – one label appears in two surviving nodes.
//	ErrLabelCoverageGap – an input label is not held by any surviving node.
//
// Complexity:
//
//	Table: O(L + maxLabel). Remap: O(N) on top of Table.
package relabel
