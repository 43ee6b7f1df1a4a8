package progress

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
)

// Metrics holds the Prometheus collectors shared by every run. Use Sink to
// bind one run to them; collectors are safe for concurrent use.
//
// Exposed series (namespace "spanviz"):
//
//	runs_total{algorithm,state}            finished runs
//	active_runs                            runs started and not yet finished
//	edges_accepted_total{algorithm}
//	edges_rejected_total{algorithm}
//	tree_weight{algorithm}                 last reported total weight
//	tree_edges{algorithm}                  last reported edges added
//	run_duration_seconds{algorithm,state}  wall time from start to finish
type Metrics struct {
	runs      *prometheus.CounterVec
	active    prometheus.Gauge
	accepted  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	weight    *prometheus.GaugeVec
	treeEdges *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg (prometheus.DefaultRegisterer
// if nil). A private prometheus.NewRegistry() keeps tests isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spanviz",
			Name:      "runs_total",
			Help:      "Finished MST runs by algorithm and final state",
		}, []string{"algorithm", "state"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "spanviz",
			Name:      "active_runs",
			Help:      "Runs started and not yet finished",
		}),
		accepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spanviz",
			Name:      "edges_accepted_total",
			Help:      "Edges accepted into the tree (kept, for reverse-delete)",
		}, []string{"algorithm"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spanviz",
			Name:      "edges_rejected_total",
			Help:      "Edges rejected as cycle-forming (removed, for reverse-delete)",
		}, []string{"algorithm"}),
		weight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "spanviz",
			Name:      "tree_weight",
			Help:      "Last reported total weight of the tree under construction",
		}, []string{"algorithm"}),
		treeEdges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "spanviz",
			Name:      "tree_edges",
			Help:      "Last reported number of tree edges",
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spanviz",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a run including pacing and pauses",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"algorithm", "state"}),
	}
}

// Sink returns a Sink feeding one run's notifications into m under the
// given algorithm label.
func (m *Metrics) Sink(algorithm string) Sink {
	return &metricsRun{m: m, algorithm: algorithm}
}

// metricsRun binds one run to the shared collectors.
type metricsRun struct {
	m         *Metrics
	algorithm string
	started   time.Time
}

func (r *metricsRun) OnRunStarted(RunInfo) {
	r.started = time.Now()
	r.m.active.Inc()
	r.m.weight.WithLabelValues(r.algorithm).Set(0)
	r.m.treeEdges.WithLabelValues(r.algorithm).Set(0)
}

func (r *metricsRun) OnEdgeAccepted(core.Edge) {
	r.m.accepted.WithLabelValues(r.algorithm).Inc()
}

func (r *metricsRun) OnEdgeRejected(core.Edge) {
	r.m.rejected.WithLabelValues(r.algorithm).Inc()
}

func (r *metricsRun) OnNodeStateChanged(core.NodeID, core.NodeState) {}

func (r *metricsRun) OnStatsChanged(edgesAdded int, totalWeight float64) {
	r.m.weight.WithLabelValues(r.algorithm).Set(totalWeight)
	r.m.treeEdges.WithLabelValues(r.algorithm).Set(float64(edgesAdded))
}

func (r *metricsRun) OnRunFinished(final control.State) {
	r.m.active.Dec()
	r.m.runs.WithLabelValues(r.algorithm, final.String()).Inc()
	r.m.duration.WithLabelValues(r.algorithm, final.String()).Observe(time.Since(r.started).Seconds())
}
