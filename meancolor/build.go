package meancolor

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/gridgraph"
)

// Build returns a RAG with one node per label of labels. image is indexed
// [y][x][channel] and must match labels in height and width.
//
// Complexity: O(W×H×(C+d) + E log V).
func Build(image [][][]float64, labels [][]int, opts Options) (*core.Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	channels, err := checkShape(image, labels)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(labels, gridgraph.GridOptions{Conn: opts.Conn})
	if err != nil {
		return nil, err
	}

	totals := make(map[int][]float64)
	counts := make(map[int]int)
	for l, cells := range gg.Regions() {
		t := make([]float64, channels)
		for _, idx := range cells {
			x, y := gg.Coordinate(idx)
			floats.Add(t, image[y][x])
		}
		totals[l] = t
		counts[l] = len(cells)
	}
	means := make(map[int][]float64, len(totals))
	for l, t := range totals {
		means[l] = mean(t, counts[l])
	}

	g, err := gg.ToRAG(func(a, b, _ int) float64 {
		return opts.weight(floats.Distance(means[a], means[b], 2))
	})
	if err != nil {
		return nil, err
	}
	for _, n := range g.Nodes() {
		n.Metadata[KeyTotal] = totals[n.ID]
		n.Metadata[KeyCount] = counts[n.ID]
		n.Metadata[KeyMean] = means[n.ID]
	}

	return g, nil
}

// checkShape returns the channel count shared by every pixel.
func checkShape(image [][][]float64, labels [][]int) (int, error) {
	if len(image) == 0 || len(image[0]) == 0 || len(image[0][0]) == 0 {
		return 0, ErrEmptyImage
	}
	if len(image) != len(labels) {
		return 0, ErrShapeMismatch
	}
	channels := len(image[0][0])
	for y, row := range image {
		if len(row) != len(labels[y]) {
			return 0, ErrShapeMismatch
		}
		for _, px := range row {
			if len(px) != channels {
				return 0, ErrChannelMismatch
			}
		}
	}

	return channels, nil
}

func mean(total []float64, count int) []float64 {
	m := make([]float64, len(total))
	copy(m, total)
	floats.Scale(1/float64(count), m)

	return m
}

// weight turns a colour distance into an edge weight per o.Mode. Both modes
// grow with d, so the most alike regions are always merged first.
func (o Options) weight(d float64) float64 {
	if o.Mode == ModeSimilarity {
		return 1 - math.Exp(-d*d/o.Sigma)
	}

	return d
}
