// Package core defines the Graph, Node and Edge types of a region adjacency
// graph, its sentinel errors and the NewGraph constructor.
//
// This file declares Node, Edge, Graph, GraphOption, ReweightFunc and the
// sentinel errors.
package core

import (
	"errors"
	"sync"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/ragmerge/pqueue"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates a node ID below zero.
	ErrNegativeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN edge weight, which cannot be ordered.
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrSameNode indicates MergeNodes was asked to merge a node into itself.
	ErrSameNode = errors.New("core: cannot merge a node into itself")

	// ErrNilReweight indicates MergeNodes was called without a ReweightFunc.
	ErrNilReweight = errors.New("core: reweight function is nil")
)

// Node is one region of the graph.
//
// Labels holds the original label IDs folded into this node. Metadata is the
// opaque attribute bag merge strategies read and write (mean colour, pixel
// counts, …).
type Node struct {
	// ID is the unique identifier of this node.
	ID int

	// Labels is the ordered set of original labels this node represents.
	Labels *btree.Set[int]

	// Metadata stores strategy attributes. DuplicateNode copies the map, not
	// the values it holds.
	Metadata map[string]interface{}
}

// LabelSlice returns the node's labels in ascending order.
func (n *Node) LabelSlice() []int {
	return n.Labels.Keys()
}

// Edge is an undirected, weighted connection between two nodes. U < V always.
type Edge struct {
	// U and V are the endpoints, U < V.
	U, V int

	// Weight is the dissimilarity between the two regions.
	Weight float64

	// Metadata stores strategy attributes for this edge.
	Metadata map[string]interface{}

	// Ref is the handle of the queue entry currently representing this edge;
	// pqueue.None when the edge has not been queued. MergeNodes preserves Ref
	// when it updates an existing edge in place. Access it through
	// Graph.Ref and Graph.SetRef while other goroutines may hold the graph.
	Ref pqueue.Handle
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}

// ReweightFunc computes the weight of edge (dst, n) while src is being merged
// into dst. It is called once per neighbor n of src or dst, before src is
// removed, so both nodes can still be inspected.
type ReweightFunc func(g *Graph, src, dst, n int) (float64, error)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the adjacency catalog for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adj = make(map[int]map[int]*Edge, n)
		}
	}
}

// WithFirstID makes AllocateID start at id instead of 0. Useful when node IDs
// must not collide with an external numbering.
func WithFirstID(id int) GraphOption {
	return func(g *Graph) {
		if id > g.nextID {
			g.nextID = id
		}
	}
}

// Graph is an undirected, weighted region adjacency graph.
//
// mu guards nodes, adj, edgeCount and nextID.
type Graph struct {
	mu sync.RWMutex

	nodes     btree.Map[int, *Node] // node ID → Node, ascending iteration
	adj       map[int]map[int]*Edge // adj[u][v] == adj[v][u]
	edgeCount int                   // number of distinct edges
	nextID    int                   // next ID AllocateID hands out
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[int]map[int]*Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount  int     // surviving nodes
	EdgeCount  int     // distinct undirected edges
	LabelCount int     // sum of label-set sizes
	NextID     int     // next ID AllocateID would hand out
	MinWeight  float64 // lightest edge (0 if no edges)
	MaxWeight  float64 // heaviest edge (0 if no edges)
}
