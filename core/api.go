// File: api.go
// Role: Read-only diagnostics facade.
package core

import "sort"

// Stats produces a read-only snapshot of catalog sizes and the weight range.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.nodes.Len(),
		EdgeCount: g.edgeCount,
		NextID:    g.nextID,
	}
	g.nodes.Scan(func(_ int, n *Node) bool {
		stats.LabelCount += n.Labels.Len()
		return true
	})
	first := true
	for u, bucket := range g.adj {
		for v, e := range bucket {
			if u > v {
				continue
			}
			if first || e.Weight < stats.MinWeight {
				stats.MinWeight = e.Weight
			}
			if first || e.Weight > stats.MaxWeight {
				stats.MaxWeight = e.Weight
			}
			first = false
		}
	}

	return &stats
}

// Labels returns the union of all label sets in ascending order.
// Complexity: O(L log L).
func (g *Graph) Labels() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var all []int
	g.nodes.Scan(func(_ int, n *Node) bool {
		all = append(all, n.Labels.Keys()...)
		return true
	})
	sort.Ints(all)

	return all
}
