// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending.
//
// Concurrency:
//   - All catalogs protected by g.mu.
package core

import (
	"math"
	"sort"

	"github.com/katalvlaran/ragmerge/pqueue"
)

// AddEdge inserts or updates the undirected edge {u, v} with weight w.
//
// Implementation:
//   - Stage 1: Validate inputs (ErrLoopNotAllowed, ErrBadWeight).
//   - Stage 2: Under the write lock, require both endpoints (ErrNodeNotFound).
//   - Stage 3: If the edge exists, replace its weight in place, keeping Ref
//     and Metadata; otherwise allocate it and register both mirror entries.
//
// Behavior highlights:
//   - Upsert semantics mirror how a RAG absorbs neighborhoods: re-adding an
//     existing edge updates it, it never creates a parallel edge.
//   - Endpoints are normalised so that U < V.
//
// Returns:
//   - *Edge: the live edge record.
//
// Complexity:
//   - Time O(log V), Space O(1).
func (g *Graph) AddEdge(u, v int, w float64) (*Edge, error) {
	if u == v {
		return nil, ErrLoopNotAllowed
	}
	if math.IsNaN(w) {
		return nil, ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(u); !ok {
		return nil, ErrNodeNotFound
	}
	if _, ok := g.nodes.Get(v); !ok {
		return nil, ErrNodeNotFound
	}

	return g.upsertEdgeLocked(u, v, w), nil
}

// upsertEdgeLocked sets the weight of {u, v}, creating the edge if needed.
// Caller holds g.mu for writing and has validated endpoints.
func (g *Graph) upsertEdgeLocked(u, v int, w float64) *Edge {
	if e, ok := g.adj[u][v]; ok {
		e.Weight = w
		return e
	}
	if u > v {
		u, v = v, u
	}
	e := &Edge{U: u, V: v, Weight: w, Metadata: make(map[string]interface{})}
	g.adj[u][v] = e
	g.adj[v][u] = e
	g.edgeCount++

	return e
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u, v} exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// Edge returns the live record of edge {u, v}. Argument order is irrelevant.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) Edge(u, v int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adj[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetRef stores h as the queue handle of e and returns the handle it
// replaces. e must be a record obtained from g.
func (g *Graph) SetRef(e *Edge, h pqueue.Handle) pqueue.Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev := e.Ref
	e.Ref = h

	return prev
}

// Ref returns the queue handle of e.
func (g *Graph) Ref(e *Edge) pqueue.Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return e.Ref
}

// Edges returns every edge once, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for u, bucket := range g.adj {
		for v, e := range bucket {
			if u < v {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].U != es[j].U {
			return es[i].U < es[j].U
		}
		return es[i].V < es[j].V
	})
}
