package meancolor

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ragmerge/core"
)

// Strategy merges mean-colour attributes. Its zero value weighs edges by
// plain distance.
type Strategy struct {
	Mode  Mode
	Sigma float64
}

// NewStrategy returns the Strategy matching the Options a graph was built with.
func NewStrategy(opts Options) Strategy {
	return Strategy{Mode: opts.Mode, Sigma: opts.Sigma}
}

// MergeAttrs adds src's total colour and pixel count to dst and recomputes
// dst's mean colour.
func (s Strategy) MergeAttrs(g *core.Graph, src, dst int) error {
	sn, err := g.Node(src)
	if err != nil {
		return err
	}
	dn, err := g.Node(dst)
	if err != nil {
		return err
	}
	st, sc, err := attrs(sn)
	if err != nil {
		return err
	}
	dt, dc, err := attrs(dn)
	if err != nil {
		return err
	}
	if len(st) != len(dt) {
		return ErrChannelMismatch
	}

	total := make([]float64, len(dt))
	floats.AddTo(total, dt, st)
	count := dc + sc
	dn.Metadata[KeyTotal] = total
	dn.Metadata[KeyCount] = count
	dn.Metadata[KeyMean] = mean(total, count)

	return nil
}

// Reweight returns the weight between dst's (already merged) mean colour and
// n's mean colour.
func (s Strategy) Reweight(g *core.Graph, _, dst, n int) (float64, error) {
	a, err := meanOf(g, dst)
	if err != nil {
		return 0, err
	}
	b, err := meanOf(g, n)
	if err != nil {
		return 0, err
	}
	if len(a) != len(b) {
		return 0, ErrChannelMismatch
	}

	return Options{Mode: s.Mode, Sigma: s.Sigma}.weight(floats.Distance(a, b, 2)), nil
}

func attrs(n *core.Node) ([]float64, int, error) {
	t, ok1 := n.Metadata[KeyTotal].([]float64)
	c, ok2 := n.Metadata[KeyCount].(int)
	if !ok1 || !ok2 || c <= 0 {
		return nil, 0, ErrMissingAttrs
	}

	return t, c, nil
}

func meanOf(g *core.Graph, id int) ([]float64, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	m, ok := n.Metadata[KeyMean].([]float64)
	if !ok {
		return nil, ErrMissingAttrs
	}

	return m, nil
}
