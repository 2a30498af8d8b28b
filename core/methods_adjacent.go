// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges, Degree).
// Determinism:
//   - Neighbors() returns IDs ascending.
//   - IncidentEdges() returns edges ordered by the opposite endpoint ascending.
package core

import "sort"

// Neighbors returns the IDs adjacent to id in ascending order.
//
// Errors:
//   - ErrNodeNotFound: if id does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return sortedKeys(bucket), nil
}

// IncidentEdges returns the live edge records touching id, ordered by the
// opposite endpoint.
//
// Errors:
//   - ErrNodeNotFound: if id does not exist.
func (g *Graph) IncidentEdges(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]*Edge, 0, len(bucket))
	for _, nb := range sortedKeys(bucket) {
		out = append(out, bucket[nb])
	}

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(bucket), nil
}

// sortedKeys returns the keys of an adjacency bucket in ascending order.
func sortedKeys(bucket map[int]*Edge) []int {
	ids := make([]int, 0, len(bucket))
	for nb := range bucket {
		ids = append(ids, nb)
	}
	sort.Ints(ids)

	return ids
}
