package merge

import (
	"errors"
	"math"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/pqueue"
	"github.com/katalvlaran/ragmerge/relabel"
)

// Contract merges g hierarchically and returns labels remapped onto the
// surviving regions: out[i] is the 0-based index, in g.Nodes() order, of the
// region holding labels[i]. labels is not modified.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. A Strategy must be set (ErrNilStrategy).
//  3. Threshold must not be NaN (ErrBadThreshold).
//
// Remap failures surface as relabel.ErrLabelCoverageGap,
// relabel.ErrDuplicateLabel or relabel.ErrNegativeLabel.
func Contract(g *core.Graph, labels []int, opts ...Option) ([]int, error) {
	res, err := Run(g, opts...)
	if err != nil {
		return nil, err
	}

	return relabel.Remap(res.Graph, labels)
}

// Run performs the contraction and returns the contracted graph together
// with the merge history. See the package documentation for the loop.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Strategy == nil {
		return nil, ErrNilStrategy
	}
	if f, ok := cfg.Strategy.(Funcs); ok && f.Weight == nil {
		return nil, ErrNilStrategy
	}
	if math.IsNaN(cfg.Threshold) {
		return nil, ErrBadThreshold
	}

	if cfg.CopyGraph {
		g = g.Clone()
	}
	q := cfg.Queue
	if q == nil {
		q = pqueue.New(g.EdgeCount())
	}

	runID := uuid.NewString()
	r := &runner{
		g:   g,
		q:   q,
		cfg: cfg,
		log: cfg.Logger.WithField("run", runID),
		res: &Result{RunID: runID, Graph: g},
	}

	r.init()
	if err := r.process(); err != nil {
		r.log.WithError(err).Debug("contraction aborted")
		return nil, err
	}
	r.log.WithFields(logrus.Fields{
		"merges":  r.res.Stats.Merges,
		"regions": g.NodeCount(),
		"stale":   r.res.Stats.StalePops,
		"pushes":  r.res.Stats.Pushes,
	}).Debug("contraction finished")

	return r.res, nil
}

// runner holds the mutable state of a single contraction.
type runner struct {
	g   *core.Graph        // graph being contracted; owned by this run
	q   *pqueue.Queue      // lazy-invalidation queue of edge entries
	cfg Options            // resolved options
	log logrus.FieldLogger // logger carrying the run ID
	res *Result            // accumulated result
}

// init pushes one entry per edge and stores its handle in the edge. An
// entry left behind by an earlier run over the same graph is retired.
func (r *runner) init() {
	edges := r.g.Edges()
	for _, e := range edges {
		h := r.push(e.Weight, e.U, e.V)
		r.q.Invalidate(r.g.SetRef(e, h))
	}
	r.log.WithFields(logrus.Fields{
		"edges":     len(edges),
		"nodes":     r.g.NodeCount(),
		"threshold": r.cfg.Threshold,
		"in_place":  r.cfg.InPlace,
	}).Debug("queue seeded")
}

func (r *runner) push(w float64, u, v int) pqueue.Handle {
	h := r.q.Push(w, u, v)
	r.res.Stats.Pushes++
	r.cfg.Recorder.Pushed(1)
	if n := r.q.Len(); n > r.res.Stats.PeakQueueLen {
		r.res.Stats.PeakQueueLen = n
	}

	return h
}

// process is the main loop. It stops when the queue is exhausted or its
// lightest entry is not below the threshold.
func (r *runner) process() error {
	for {
		w, ok := r.q.PeekMinWeight()
		if !ok || !(w < r.cfg.Threshold) {
			r.cfg.Recorder.QueueSize(r.q.Len())
			return nil
		}

		entry, valid, err := r.q.PopMin()
		if errors.Is(err, pqueue.ErrEmpty) {
			return nil
		}
		r.res.Stats.Pops++
		r.cfg.Recorder.Popped(!valid)
		if !valid {
			r.res.Stats.StalePops++
			continue
		}

		if err = r.step(entry); err != nil {
			return err
		}
		r.cfg.Recorder.QueueSize(r.q.Len())
	}
}

// step performs one merge for a valid popped entry.
func (r *runner) step(entry pqueue.Entry) error {
	n1, n2 := entry.U, entry.V

	e, err := r.g.Edge(n1, n2)
	if err != nil {
		return pkgerrors.Wrapf(ErrInvariantViolation, "edge %d-%d", n1, n2)
	}
	if r.g.Ref(e) != entry.Handle {
		return pkgerrors.Wrapf(ErrInvariantViolation, "edge %d-%d is represented by another entry", n1, n2)
	}

	// n1 is consumed by the merge; every entry of its edges is about to lie.
	if err = r.invalidate(n1); err != nil {
		return err
	}
	src, dst, relocated := n1, n2, -1
	if !r.cfg.InPlace {
		if err = r.invalidate(n2); err != nil {
			return err
		}
		if dst, err = r.relocate(n2); err != nil {
			return err
		}
		relocated = n2
	}

	if err = r.cfg.Strategy.MergeAttrs(r.g, src, dst); err != nil {
		return pkgerrors.Wrapf(err, "merge attributes of %d into %d", src, dst)
	}
	survivor, err := r.g.MergeNodes(src, dst, r.cfg.Strategy.Reweight)
	if err != nil {
		return pkgerrors.Wrapf(err, "merge %d into %d", src, dst)
	}
	if err = r.revalidate(survivor); err != nil {
		return err
	}

	r.res.Steps = append(r.res.Steps, Step{
		Src:       src,
		Dst:       dst,
		Relocated: relocated,
		Survivor:  survivor,
		Weight:    entry.Weight,
	})
	r.res.Stats.Merges++
	r.cfg.Recorder.Merged(entry.Weight)
	r.log.WithFields(logrus.Fields{
		"src":      src,
		"dst":      dst,
		"survivor": survivor,
		"weight":   entry.Weight,
	}).Debug("regions merged")

	return nil
}

// invalidate retires the queue entries of every edge incident to id.
func (r *runner) invalidate(id int) error {
	edges, err := r.g.IncidentEdges(id)
	if err != nil {
		return pkgerrors.Wrapf(ErrInvariantViolation, "node %d: %v", id, err)
	}
	for _, e := range edges {
		r.q.Invalidate(r.g.Ref(e))
	}

	return nil
}

// relocate copies id onto a fresh ID with all of its edges and retires the
// old identity. The copy's edges start without queue entries.
func (r *runner) relocate(id int) (int, error) {
	dup, err := r.g.DuplicateNode(id)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "duplicate node %d", id)
	}
	if err = r.g.RemoveNode(id); err != nil {
		return 0, pkgerrors.Wrapf(err, "retire node %d", id)
	}

	return dup, nil
}

// revalidate re-pushes every edge of id with its current weight. Edges that
// existed before the merge were updated in place, so their previous entry is
// retired once the new one is stored.
func (r *runner) revalidate(id int) error {
	edges, err := r.g.IncidentEdges(id)
	if err != nil {
		return pkgerrors.Wrapf(ErrInvariantViolation, "survivor %d: %v", id, err)
	}
	for _, e := range edges {
		h := r.push(e.Weight, id, e.Other(id))
		r.q.Invalidate(r.g.SetRef(e, h))
	}

	return nil
}
