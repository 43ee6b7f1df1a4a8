package orchestrator

import (
	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/progress"
)

// SinkFactory returns the sink for one run of algorithm.
type SinkFactory func(algorithm string) progress.Sink

// SchedulerFactory returns the scheduler for one run. Every run gets its own
// so pacing state is never shared.
type SchedulerFactory func() control.Scheduler

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSink adds a sink factory. Several factories are combined with
// progress.Multi in the order given. Panics on nil.
func WithSink(f SinkFactory) Option {
	if f == nil {
		panic("orchestrator: WithSink(nil)")
	}

	return func(o *Orchestrator) { o.sinks = append(o.sinks, f) }
}

// WithScheduler replaces the default paced scheduler. Panics on nil.
func WithScheduler(f SchedulerFactory) Option {
	if f == nil {
		panic("orchestrator: WithScheduler(nil)")
	}

	return func(o *Orchestrator) { o.scheduler = f }
}

// WithGenerateOptions appends builder options applied after the ones
// derived from config (so they win).
func WithGenerateOptions(opts ...builder.BuilderOption) Option {
	return func(o *Orchestrator) { o.generate = append(o.generate, opts...) }
}
