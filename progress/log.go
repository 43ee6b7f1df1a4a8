package progress

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
)

// LogSink writes one run's notifications to a zap logger: run boundaries
// at info, step events at debug.
type LogSink struct {
	log         *zap.Logger
	edgesAdded  int
	totalWeight float64
}

// NewLogSink returns a LogSink writing to log (a no-op logger if nil).
func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}

	return &LogSink{log: log}
}

// OnRunStarted logs the run header at info level.
func (l *LogSink) OnRunStarted(info RunInfo) {
	l.log = l.log.With(zap.String("algorithm", info.Algorithm))
	l.log.Info("run started",
		zap.String("engine", info.Engine),
		zap.Int("nodes", info.Nodes),
		zap.Int("edges", info.Edges),
		zap.Bool("approximate", info.Approximate),
	)
}

// OnEdgeAccepted logs the edge at debug level.
func (l *LogSink) OnEdgeAccepted(e core.Edge) {
	l.log.Debug("edge accepted", edgeFields(e)...)
}

// OnEdgeRejected logs the edge at debug level.
func (l *LogSink) OnEdgeRejected(e core.Edge) {
	l.log.Debug("edge rejected", edgeFields(e)...)
}

// OnNodeStateChanged logs the transition at debug level.
func (l *LogSink) OnNodeStateChanged(id core.NodeID, s core.NodeState) {
	l.log.Debug("node state", zap.Int("node", id), zap.Stringer("state", s))
}

// OnStatsChanged keeps the running totals for the finish line.
func (l *LogSink) OnStatsChanged(edgesAdded int, totalWeight float64) {
	l.edgesAdded, l.totalWeight = edgesAdded, totalWeight
}

// OnRunFinished logs the final state at info level.
func (l *LogSink) OnRunFinished(final control.State) {
	l.log.Info("run finished",
		zap.Stringer("state", final),
		zap.Int("edges_added", l.edgesAdded),
		zap.Float64("total_weight", l.totalWeight),
	)
}

func edgeFields(e core.Edge) []zap.Field {
	return []zap.Field{
		zap.Int("from", e.From),
		zap.Int("to", e.To),
		zap.Float64("weight", e.Weight),
	}
}
