// Package metrics exports contraction runs to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/ragmerge/merge"
)

// Collector implements merge.Recorder on Prometheus collectors registered
// with a caller-supplied Registerer.
type Collector struct {
	Pushes     prometheus.Counter
	Pops       *prometheus.CounterVec
	Merges     prometheus.Counter
	MergeCost  prometheus.Histogram
	QueueDepth prometheus.Gauge
}

var _ merge.Recorder = (*Collector)(nil)

// NewCollector registers the ragmerge_* metrics with reg. A nil reg
// creates unregistered collectors.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Pushes: f.NewCounter(prometheus.CounterOpts{
			Name: "ragmerge_queue_pushes_total",
			Help: "Queue entries pushed, initial seeding included",
		}),
		// status is "valid" or "stale"
		Pops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ragmerge_queue_pops_total",
			Help: "Queue entries popped, by validity at pop time",
		}, []string{"status"}),
		Merges: f.NewCounter(prometheus.CounterOpts{
			Name: "ragmerge_merges_total",
			Help: "Region pairs merged",
		}),
		MergeCost: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ragmerge_merge_weight",
			Help:    "Weight of the edges merged",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "ragmerge_queue_length",
			Help: "Entries held by the queue, stale ones included",
		}),
	}
}

// Pushed adds n pushes.
func (c *Collector) Pushed(n int) { c.Pushes.Add(float64(n)) }

// Popped counts one pop.
func (c *Collector) Popped(stale bool) {
	status := "valid"
	if stale {
		status = "stale"
	}
	c.Pops.WithLabelValues(status).Inc()
}

// Merged counts one merge of an edge weighing weight.
func (c *Collector) Merged(weight float64) {
	c.Merges.Inc()
	c.MergeCost.Observe(weight)
}

// QueueSize sets the queue length gauge.
func (c *Collector) QueueSize(n int) { c.QueueDepth.Set(float64(n)) }
