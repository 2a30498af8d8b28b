// File: methods_clone.go
// Role: Value copies of the graph and of single nodes.
// Determinism:
//   - Clone carries nextID, so IDs allocated on the clone follow the same
//     sequence they would have followed on the source.
//
// Concurrency:
//   - Clone holds the source read lock; DuplicateNode holds the write lock.
package core

import "github.com/katalvlaran/ragmerge/pqueue"

// Clone returns a deep value copy of the graph: nodes, label sets, metadata
// maps (values shared), edges and adjacency.
//
// Behavior highlights:
//   - Edge.Ref is reset to pqueue.None on the clone; queue state belongs to a
//     single contraction run and never travels with a copy.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(g.nodes.Len()))
	clone.nextID = g.nextID
	g.nodes.Scan(func(id int, n *Node) bool {
		clone.nodes.Set(id, &Node{
			ID:       id,
			Labels:   n.Labels.Copy(),
			Metadata: copyMetadata(n.Metadata),
		})
		clone.adj[id] = make(map[int]*Edge, len(g.adj[id]))
		return true
	})
	for u, bucket := range g.adj {
		for v, e := range bucket {
			if u > v {
				continue
			}
			ne := &Edge{U: e.U, V: e.V, Weight: e.Weight, Metadata: copyMetadata(e.Metadata), Ref: pqueue.None}
			clone.adj[u][v] = ne
			clone.adj[v][u] = ne
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// DuplicateNode copies node src onto a freshly allocated ID.
//
// Implementation:
//   - Stage 1: Under the write lock, require src (ErrNodeNotFound).
//   - Stage 2: Allocate the new ID and copy the label set and metadata map.
//   - Stage 3: Re-create every incident edge {src, n} as {copy, n} with the
//     same weight and a copied metadata map. New edges start with Ref None.
//
// Behavior highlights:
//   - src is left in place; callers that want a logical rename remove it
//     afterwards. Handles to src then fail with ErrNodeNotFound instead of
//     silently resolving to the copy.
//
// Returns:
//   - int: the ID of the copy.
//
// Complexity:
//   - Time O(deg(src) + L), Space O(deg(src) + L).
func (g *Graph) DuplicateNode(src int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes.Get(src)
	if !ok {
		return 0, ErrNodeNotFound
	}
	id := g.nextID
	dup := g.addNodeLocked(id, nil)
	dup.Labels = n.Labels.Copy()
	dup.Metadata = copyMetadata(n.Metadata)

	for _, nb := range sortedKeys(g.adj[src]) {
		old := g.adj[src][nb]
		e := g.upsertEdgeLocked(id, nb, old.Weight)
		e.Metadata = copyMetadata(old.Metadata)
	}

	return id, nil
}

func copyMetadata(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
