// Package merge implements greedy hierarchical merging of a region adjacency
// graph: repeatedly contract the two regions joined by the globally lightest
// edge, recompute the weights around the merged region, and stop once no edge
// weighs less than a threshold.
//
// Overview:
//
//   - Run seeds a lazy-invalidation priority queue (package pqueue) with one
//     entry per edge and stores each Handle in core.Edge.Ref.
//   - The loop pops while the lightest entry weighs < Threshold. Stale entries
//     are discarded on pop. Before a merge every queue entry of the consumed
//     region is invalidated in O(1); after the merge every edge of the
//     surviving region is re-pushed with its current weight.
//   - Two merge modes: in-place (src folds into dst, dst keeps its ID) and
//     copy-based (dst is first relocated to a fresh ID via DuplicateNode, the
//     old identity is retired, and src folds into the copy).
//   - A Strategy decides how regions combine: MergeAttrs folds domain
//     attributes, Reweight computes the new edge weights.
//   - Contract additionally maps the original labels onto the surviving
//     regions (package relabel).
//
// Options:
//
//	– WithThreshold(t)        merge only edges lighter than t (default 0: no merges).
//	– WithInPlaceMerge(b)     in-place (default) or copy-based merges.
//	– WithCopyGraph()         contract a private clone, leave the input untouched.
//	– WithStrategy(s)         required; see Funcs, SingleLinkage, CompleteLinkage.
//	– WithLogger(l)           logrus.FieldLogger; per-merge records at Debug level.
//	– WithRecorder(r)         metrics sink (package metrics provides a Prometheus one).
//	– WithQueue(q)            seed queue; may already hold dead entries.
//
// Errors (sentinel):
//
//	– ErrNilGraph           graph pointer is nil.
//	– ErrNilStrategy        no Strategy, or Funcs without a weight function.
//	– ErrBadThreshold       threshold is NaN.
//	– ErrInvariantViolation a valid queue entry refers to an edge that is gone
//	                        or that is represented by another entry. Fatal.
//	Strategy errors are returned wrapped with context; errors.Is and
//	github.com/pkg/errors.Cause both reach the original value.
//
// Complexity:
//
//	– Time:  O((E₀ + Σ deg) · log Q) where Q is the queue size.
//	– Space: O(E₀ + Σ deg) queue entries; dead ones are reclaimed on pop.
//
// Example usage:
//
//	labels, err := merge.Contract(g, original,
//	    merge.WithThreshold(0.3),
//	    merge.WithStrategy(merge.SingleLinkage),
//	)
package merge
