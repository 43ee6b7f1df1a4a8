// Package progress defines the Sink the MST engines report to, plus the
// sinks spanviz ships with.
//
// Contract (per run):
//
//	OnRunStarted                      exactly once, first
//	OnEdgeAccepted / OnEdgeRejected   in step order
//	OnNodeStateChanged                when a node joins the frontier or the tree
//	OnStatsChanged                    after every accepted edge
//	OnRunFinished                     exactly once, last (Completed or Stopped)
//
// Every call for one run comes from that run's goroutine, so a sink bound
// to a single run needs no locking. Sinks read from other goroutines while
// a run is live (Recorder) or shared by several runs (Metrics) lock
// internally.
//
// Implementations:
//
//   - Nop:       discards everything.
//   - Funcs:     adapter from optional callbacks.
//   - Multi:     fan-out in argument order.
//   - Recorder:  in-memory event log and run-state mirror, for hosts and tests.
//   - LogSink:   zap; run boundaries at info, steps at debug.
//   - Metrics:   Prometheus counters/gauges/histogram; Metrics.Sink binds one run.
//   - TraceSink: one OpenTelemetry span per run with an event per edge decision.
package progress
