// Package core provides the region adjacency graph (RAG) that hierarchical
// merging operates on: an undirected, weighted graph whose nodes carry sets of
// original labels.
//
// The Graph G = (V,E) offers:
//
//   - Integer node IDs, allocated monotonically (AllocateID) and never reused
//     while a node with that ID is live.
//   - An ordered label set per node (tidwall/btree Set) recording which
//     original segments the node has absorbed.
//   - Undirected float64-weighted edges stored once, keyed by (min,max) and
//     mirrored in a per-node adjacency map for O(1) lookups.
//   - A back-reference slot per edge (Edge.Ref) holding the pqueue.Handle of
//     the queue entry that currently represents it.
//   - Structural contraction (MergeNodes) and identity relocation
//     (DuplicateNode) driven by a caller-supplied ReweightFunc.
//
// Determinism:
//
//	Nodes()/NodeIDs() iterate in ascending ID order (the node table is a
//	B-tree), Neighbors() is sorted ascending and Edges() is sorted by (U,V).
//	Every label-to-index mapping built on top of this graph is therefore a
//	deterministic function of its contents.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, labels ...int) error    // O(log V + L)
//	RemoveNode(id int) error                // O(deg + log V)
//	HasNode(id int) bool                    // O(log V)
//	Node(id int) (*Node, error)             // O(log V)
//	Nodes() []*Node                         // O(V)
//	AllocateID() int                        // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) (*Edge, error) // O(log V), upsert
//	RemoveEdge(u, v int) error                  // O(1)
//	Edge(u, v int) (*Edge, error)               // O(1)
//	Edges() []*Edge                             // O(E log E)
//	Neighbors(id int) ([]int, error)            // O(d log d)
//
//	// Contraction
//	DuplicateNode(src int) (int, error)
//	MergeNodes(src, dst int, reweight ReweightFunc) (int, error)
//	Clone() *Graph
//
// Errors:
//
//	ErrNegativeID     – node IDs must be >= 0
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – u == v on AddEdge
//	ErrBadWeight      – NaN weight
//	ErrSameNode       – MergeNodes(src, src)
//	ErrNilReweight    – MergeNodes with a nil ReweightFunc
//
// Concurrency:
//
//	A single sync.RWMutex guards all catalogs. Callbacks handed to MergeNodes
//	run without the lock held, so they may query the graph freely.
package core
