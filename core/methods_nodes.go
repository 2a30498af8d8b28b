// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes in ascending ID order.
//
// Concurrency:
//   - All catalogs protected by g.mu.
package core

import "github.com/tidwall/btree"

// AddNode inserts node id if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject negative IDs (ErrNegativeID).
//   - Stage 2: Under the write lock, return early if id is present.
//   - Stage 3: Allocate the Node with its label set; with no labels given the
//     set is {id}, matching a RAG built straight from a label image.
//   - Stage 4: Bump nextID past id so AllocateID never hands it out again.
//
// Errors:
//   - ErrNegativeID: if id < 0 or any label < 0.
//
// Complexity:
//   - Time O(log V + L), Space O(L) for L labels.
func (g *Graph) AddNode(id int, labels ...int) error {
	if id < 0 {
		return ErrNegativeID
	}
	for _, l := range labels {
		if l < 0 {
			return ErrNegativeID
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes.Get(id); exists {
		return nil // no-op for existing node
	}
	g.addNodeLocked(id, labels)

	return nil
}

// addNodeLocked registers a fresh node. Caller holds g.mu for writing and has
// checked that id is unused.
func (g *Graph) addNodeLocked(id int, labels []int) *Node {
	set := new(btree.Set[int])
	if len(labels) == 0 {
		set.Insert(id)
	}
	for _, l := range labels {
		set.Insert(l)
	}
	n := &Node{ID: id, Labels: set, Metadata: make(map[string]interface{})}
	g.nodes.Set(id, n)
	g.adj[id] = make(map[int]*Edge)
	if id >= g.nextID {
		g.nextID = id + 1
	}

	return n
}

// HasNode reports whether node id exists.
// Complexity: O(log V).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)

	return ok
}

// Node returns the live record of node id.
//
// The returned pointer aliases the catalog: strategies may mutate Metadata
// and Labels through it, but must not change ID.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
func (g *Graph) Node(id int) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes.Get(id)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns the live node records in ascending ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, g.nodes.Len())
	g.nodes.Scan(func(_ int, n *Node) bool {
		out = append(out, n)
		return true
	})

	return out
}

// NodeIDs returns node IDs in ascending order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, g.nodes.Len())
	g.nodes.Scan(func(id int, _ *Node) bool {
		out = append(out, id)
		return true
	})

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}

// RemoveNode deletes node id and every incident edge.
//
// Implementation:
//   - Stage 1: Under the write lock, verify presence (ErrNodeNotFound).
//   - Stage 2: Drop the mirror entry of every incident edge.
//   - Stage 3: Drop the node's adjacency bucket and catalog entry.
//
// Notes:
//   - nextID is not rewound; the removed ID is never handed out again.
//   - Queue entries referenced by the removed edges are not touched here;
//     the contraction driver invalidates them before calling RemoveNode.
//
// Complexity:
//   - Time O(deg + log V), Space O(1).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeNodeLocked(id)
}

func (g *Graph) removeNodeLocked(id int) error {
	if _, ok := g.nodes.Get(id); !ok {
		return ErrNodeNotFound
	}
	for nb := range g.adj[id] {
		delete(g.adj[nb], id)
		g.edgeCount--
	}
	delete(g.adj, id)
	g.nodes.Delete(id)

	return nil
}

// AllocateID reserves and returns a fresh node ID, strictly greater than every
// ID this graph has seen. The caller is expected to AddNode it.
// Complexity: O(1).
func (g *Graph) AllocateID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextID
	g.nextID++

	return id
}

// NextID reports the ID AllocateID would return next, without reserving it.
func (g *Graph) NextID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextID
}
