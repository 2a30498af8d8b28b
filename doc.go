// Package ragmerge merges the regions of a region adjacency graph (RAG)
// hierarchically: the two regions joined by the lightest edge are merged
// first, the weights around the merged region are recomputed, and the process
// stops once no edge is lighter than a threshold.
//
// The module is organized by concern:
//
//	core/      thread-safe RAG: nodes with label sets, weighted edges, MergeNodes
//	pqueue/    min-priority queue with O(1) invalidation of entries
//	merge/     the contraction driver (Run, Contract), strategies and options
//	relabel/   maps original labels onto the surviving regions
//	gridgraph/ builds a RAG from a 2D label grid (4- or 8-connectivity)
//	meancolor/ mean-colour RAG construction and merge strategy
//	metrics/   Prometheus recorder for contraction runs
//	config/    YAML run configuration
//	cmd/ragmerge command line front end
//
// Quick start:
//
//	g, _ := meancolor.Build(image, labels, meancolor.DefaultOptions())
//	out, err := merge.Contract(g, flatLabels,
//		merge.WithThreshold(30),
//		merge.WithStrategy(meancolor.NewStrategy(meancolor.DefaultOptions())),
//	)
package ragmerge
