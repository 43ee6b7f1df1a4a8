package mst

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/progress"
)

// engine is one canonical implementation. It returns control.ErrStopped
// when a step boundary reports the run is over, nil when it ran out of
// work.
type engine func(r *run) error

// run is the Run State of one execution: the growing edge set, node
// classification and statistics. It is owned by the run goroutine.
type run struct {
	ctx  context.Context
	g    *core.Graph
	sink progress.Sink
	exec *control.Run

	edges  []core.Edge
	weight float64
	states []core.NodeState
}

// execute wraps an engine with the step protocol bookkeeping shared by
// every catalog entry: argument defaults, Begin, OnRunStarted, and exactly
// one OnRunFinished.
func execute(ctx context.Context, info Info, eng engine, g *core.Graph, sink progress.Sink, ctl *control.Controller) (res Result, err error) {
	const method = "Run"
	if g == nil {
		return Result{}, fmt.Errorf("%s %s: %w", method, info.Name, ErrNilGraph)
	}
	if sink == nil {
		sink = progress.Nop{}
	}
	if ctl == nil {
		ctl = control.New()
	}

	res = Result{Algorithm: info.Name, Engine: info.Engine, Approximate: info.Approximate}
	runInfo := progress.RunInfo{
		Algorithm:   info.Name,
		Engine:      info.Engine,
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		Approximate: info.Approximate,
	}

	// 1. Claim the controller. A run stopped before it began still reports
	//    its start and finish so observers see a closed run.
	exec, err := ctl.Begin()
	if err != nil {
		if errors.Is(err, control.ErrStopped) {
			sink.OnRunStarted(runInfo)
			sink.OnRunFinished(control.Stopped)
			res.State = control.Stopped

			return res, nil
		}

		return Result{}, fmt.Errorf("%s %s: %w", method, info.Name, err)
	}

	r := &run{
		ctx:    ctx,
		g:      g,
		sink:   sink,
		exec:   exec,
		states: make([]core.NodeState, g.NodeCount()),
	}
	sink.OnRunStarted(runInfo)
	defer func() { sink.OnRunFinished(res.State) }()

	// 2. Drive the engine; a stop signal is a normal outcome.
	var runErr error
	if g.NodeCount() > 0 {
		runErr = eng(r)
	}
	res.Edges, res.TotalWeight, res.EdgesAdded = r.edges, r.weight, len(r.edges)
	switch {
	case runErr == nil && exec.Finish():
		res.State = control.Completed
	case runErr == nil, errors.Is(runErr, control.ErrStopped):
		res.State = control.Stopped
	default:
		res.State = control.Stopped

		return res, fmt.Errorf("%s %s: %w", method, info.Name, runErr)
	}

	return res, nil
}

// checkpoint is the step-boundary gate.
func (r *run) checkpoint() error { return r.exec.Checkpoint(r.ctx) }

// yield is the paced hand-off after each step.
func (r *run) yield() error { return r.exec.Yield(r.ctx) }

// mark moves id to s, notifying the sink only on change.
func (r *run) mark(id core.NodeID, s core.NodeState) {
	if r.states[id] == s {
		return
	}
	r.states[id] = s
	r.sink.OnNodeStateChanged(id, s)
}

// accept appends e to the tree and reports it together with new stats.
func (r *run) accept(e core.Edge) {
	r.edges = append(r.edges, e)
	r.weight += e.Weight
	r.mark(e.From, core.Member)
	r.mark(e.To, core.Member)
	r.sink.OnEdgeAccepted(e)
	r.sink.OnStatsChanged(len(r.edges), r.weight)
}

// reject reports e as not part of the tree.
func (r *run) reject(e core.Edge) { r.sink.OnEdgeRejected(e) }

// stats publishes the current statistics.
func (r *run) stats() { r.sink.OnStatsChanged(len(r.edges), r.weight) }
