// Package pqueue implements a min-priority queue of weighted edge entries
// with lazy invalidation.
//
// Overview:
//
//   - Push inserts a (weight, u, v) entry and returns a Handle that the caller
//     stores next to the edge it describes (core.Edge.Ref).
//   - Invalidate(h) retires an entry in O(1) by flipping its slot in a liveness
//     side-table. The heap itself is never restructured on invalidation.
//   - PopMin returns the lightest entry together with its validity at pop time.
//     Dead entries are discarded by the consumer ("soft delete, collect on pop").
//
// Handles:
//
//	A Handle packs a slot index and a generation counter. A slot is recycled
//	once its entry has been popped, and its generation is bumped at that
//	moment, so a Handle held by an edge that outlived its entry is inert:
//	Invalidate on it is a no-op and Valid reports false.
//
// Complexity:
//
//   - Push, PopMin: O(log N), where N is Len() (live + dead entries).
//   - Invalidate, Valid, PeekMinWeight: O(1).
//   - Space: O(N). Len() is an upper bound on live entries, never exact.
//
// Ordering:
//
//	Entries with equal weight pop in insertion order, which makes runs
//	reproducible for a fixed push sequence.
package pqueue
