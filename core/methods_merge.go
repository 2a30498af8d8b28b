// File: methods_merge.go
// Role: Structural contraction of two adjacent regions.
// Concurrency:
//   - The write lock is released around every ReweightFunc call, so the
//     callback may read the graph through the public API.
package core

import "math"

// MergeNodes folds src into dst and returns the surviving ID (always dst).
//
// Implementation:
//   - Stage 1: Validate (ErrNilReweight, ErrSameNode, ErrNodeNotFound) and
//     snapshot the neighborhood N = (N(src) ∪ N(dst)) \ {src, dst}.
//   - Stage 2: For each n in N, ascending, call reweight(g, src, dst, n) and
//     upsert {dst, n}. An edge that already existed keeps its Ref and
//     Metadata; only its weight changes.
//   - Stage 3: dst.Labels ∪= src.Labels; remove src with its edges.
//
// Behavior highlights:
//   - Label sets are unioned, never overwritten, so every original label
//     stays in exactly one node across any sequence of merges.
//   - src and dst still exist while reweight runs.
//
// Errors:
//   - ErrNilReweight, ErrSameNode, ErrNodeNotFound.
//   - ErrBadWeight: reweight returned NaN.
//   - Any error returned by reweight, unchanged. Edges upserted before the
//     failure keep their new weights and src is not removed.
//
// Complexity:
//   - Time O((d_src + d_dst)·(log d + C_reweight) + L_src·log L_dst).
func (g *Graph) MergeNodes(src, dst int, reweight ReweightFunc) (int, error) {
	if reweight == nil {
		return 0, ErrNilReweight
	}
	if src == dst {
		return 0, ErrSameNode
	}

	g.mu.RLock()
	_, okSrc := g.nodes.Get(src)
	_, okDst := g.nodes.Get(dst)
	if !okSrc || !okDst {
		g.mu.RUnlock()
		return 0, ErrNodeNotFound
	}
	union := make(map[int]*Edge, len(g.adj[src])+len(g.adj[dst]))
	for nb := range g.adj[src] {
		union[nb] = nil
	}
	for nb := range g.adj[dst] {
		union[nb] = nil
	}
	delete(union, src)
	delete(union, dst)
	g.mu.RUnlock()

	for _, nb := range sortedKeys(union) {
		w, err := reweight(g, src, dst, nb)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(w) {
			return 0, ErrBadWeight
		}
		g.mu.Lock()
		if _, ok := g.nodes.Get(nb); !ok {
			g.mu.Unlock()
			return 0, ErrNodeNotFound
		}
		g.upsertEdgeLocked(dst, nb, w)
		g.mu.Unlock()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	s, _ := g.nodes.Get(src)
	d, ok := g.nodes.Get(dst)
	if s == nil || !ok {
		return 0, ErrNodeNotFound
	}
	s.Labels.Scan(func(l int) bool {
		d.Labels.Insert(l)
		return true
	})
	if err := g.removeNodeLocked(src); err != nil {
		return 0, err
	}

	return dst, nil
}
