// Package meancolor builds a region adjacency graph from an image and its
// label grid, and supplies the matching merge.Strategy.
//
// Every node carries three Metadata entries:
//
//   - KeyTotal ("total color"): per-channel sum over the region's pixels.
//   - KeyCount ("pixel count"): number of pixels in the region.
//   - KeyMean  ("mean color"):  KeyTotal / KeyCount.
//
// An edge weighs the Euclidean distance between the mean colours of its
// endpoints (ModeDistance), or 1 - exp(-d²/Sigma) of that distance
// (ModeSimilarity). Either way a lighter edge joins more alike regions.
//
// Strategy folds src's totals into dst and recomputes its mean before the
// structural merge, so Reweight sees the combined region. Slices stored in
// Metadata are replaced, never written through, so a node relocated by a
// copy-based merge does not share state with its retired original.
package meancolor
