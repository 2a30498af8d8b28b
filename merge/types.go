package merge

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ragmerge/core"
	"github.com/katalvlaran/ragmerge/pqueue"
)

// Sentinel errors returned by Run and Contract.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("merge: graph is nil")

	// ErrNilStrategy indicates a missing Strategy or a Funcs without Weight.
	ErrNilStrategy = errors.New("merge: strategy is nil")

	// ErrBadThreshold indicates a NaN threshold, which orders against nothing.
	ErrBadThreshold = errors.New("merge: threshold is NaN")

	// ErrInvariantViolation indicates a valid queue entry whose edge no longer
	// exists or no longer points back at it. The run is aborted.
	ErrInvariantViolation = errors.New("merge: queue entry refers to a missing edge")
)

// Strategy decides how two regions combine.
//
// MergeAttrs runs before the structural merge with both regions alive. It
// may mutate node and edge Metadata but must not change topology.
// Reweight is handed to core.Graph.MergeNodes and computes the weight of
// edge (dst, n) for every neighbor n of src or dst.
type Strategy interface {
	MergeAttrs(g *core.Graph, src, dst int) error
	Reweight(g *core.Graph, src, dst, n int) (float64, error)
}

// Funcs adapts plain functions to Strategy. A nil Merge is a no-op;
// a nil Weight makes Run fail with ErrNilStrategy.
type Funcs struct {
	Merge  func(g *core.Graph, src, dst int) error
	Weight core.ReweightFunc
}

// MergeAttrs calls f.Merge if set.
func (f Funcs) MergeAttrs(g *core.Graph, src, dst int) error {
	if f.Merge == nil {
		return nil
	}

	return f.Merge(g, src, dst)
}

// Reweight calls f.Weight.
func (f Funcs) Reweight(g *core.Graph, src, dst, n int) (float64, error) {
	if f.Weight == nil {
		return 0, ErrNilStrategy
	}

	return f.Weight(g, src, dst, n)
}

// SingleLinkage keeps the lighter of the edges (src,n) and (dst,n).
var SingleLinkage Strategy = Funcs{Weight: func(g *core.Graph, src, dst, n int) (float64, error) {
	return linkage(g, src, dst, n, math.Min)
}}

// CompleteLinkage keeps the heavier of the edges (src,n) and (dst,n).
var CompleteLinkage Strategy = Funcs{Weight: func(g *core.Graph, src, dst, n int) (float64, error) {
	return linkage(g, src, dst, n, math.Max)
}}

// linkage folds the weights of whichever of (src,n), (dst,n) exist.
func linkage(g *core.Graph, src, dst, n int, pick func(a, b float64) float64) (float64, error) {
	a, errA := g.Edge(src, n)
	b, errB := g.Edge(dst, n)
	switch {
	case errA == nil && errB == nil:
		return pick(a.Weight, b.Weight), nil
	case errA == nil:
		return a.Weight, nil
	case errB == nil:
		return b.Weight, nil
	}

	return 0, core.ErrEdgeNotFound
}

// Recorder receives run counters. The zero-cost default discards them;
// package metrics exports them to Prometheus.
type Recorder interface {
	Pushed(n int)
	Popped(stale bool)
	Merged(weight float64)
	QueueSize(n int)
}

type nopRecorder struct{}

func (nopRecorder) Pushed(int)     {}
func (nopRecorder) Popped(bool)    {}
func (nopRecorder) Merged(float64) {}
func (nopRecorder) QueueSize(int)  {}

// Options configures a contraction run.
//
// Threshold – only edges with weight < Threshold are merged.
// InPlace   – in-place merges (true) or copy-based merges (false).
// CopyGraph – contract a clone of the input graph.
// Strategy  – attribute merge and reweight policy (required).
// Logger    – destination for Debug-level merge records.
// Recorder  – run counters.
// Queue     – optional seed queue.
type Options struct {
	Threshold float64
	InPlace   bool
	CopyGraph bool
	Strategy  Strategy
	Logger    logrus.FieldLogger
	Recorder  Recorder
	Queue     *pqueue.Queue
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithThreshold sets the merge threshold. Edges weighing at least t are never
// merged; +Inf merges every connected component into one region.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithInPlaceMerge selects in-place (true) or copy-based (false) merges.
func WithInPlaceMerge(inPlace bool) Option {
	return func(o *Options) { o.InPlace = inPlace }
}

// WithCopyGraph makes the run operate on g.Clone(); the caller's graph is
// left untouched and Result.Graph is the private copy.
func WithCopyGraph() Option {
	return func(o *Options) { o.CopyGraph = true }
}

// WithStrategy sets the merge Strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics Recorder. A nil recorder keeps the default.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithQueue seeds the run with q instead of a fresh queue. Entries that the
// graph's edges still reference, such as those of an earlier run over the
// same graph, are retired during seeding. Any other live entry surfaces as
// ErrInvariantViolation.
func WithQueue(q *pqueue.Queue) Option {
	return func(o *Options) { o.Queue = q }
}

// DefaultOptions returns the defaults: threshold 0 (no merges), in-place
// merges, no graph copy, no strategy, the logrus standard logger and a
// discarding recorder.
func DefaultOptions() Options {
	return Options{
		Threshold: 0,
		InPlace:   true,
		Logger:    logrus.StandardLogger(),
		Recorder:  nopRecorder{},
	}
}

// Step records one merge: src was folded into dst, the result lives on as
// Survivor. In copy-based mode Dst is the fresh ID the popped endpoint was
// relocated to and Relocated holds the retired ID; otherwise Relocated is -1.
// Weight is the weight of the popped edge.
type Step struct {
	Src, Dst  int
	Relocated int
	Survivor  int
	Weight    float64
}

// Stats counts queue traffic for one run.
type Stats struct {
	Pushes       int // entries pushed, initial seeding included
	Pops         int // entries popped, stale ones included
	StalePops    int // entries discarded because they were dead
	Merges       int // merges performed
	PeakQueueLen int // largest queue length observed
}

// Result is the outcome of Run.
type Result struct {
	RunID string      // identifies the run in log records
	Graph *core.Graph // contracted graph (a clone under WithCopyGraph)
	Steps []Step      // merges in the order they happened
	Stats Stats
}
