package progress

import (
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
)

// RunInfo describes a run at its start.
type RunInfo struct {
	// Algorithm is the catalog name the run was started with.
	Algorithm string
	// Engine is the canonical implementation behind Algorithm.
	Engine string
	// Nodes and Edges are the input sizes.
	Nodes, Edges int
	// Approximate marks engines that do not guarantee a minimum tree.
	Approximate bool
}

// Sink receives the observable state changes of one run.
type Sink interface {
	OnRunStarted(info RunInfo)
	OnEdgeAccepted(e core.Edge)
	OnEdgeRejected(e core.Edge)
	OnNodeStateChanged(id core.NodeID, s core.NodeState)
	OnStatsChanged(edgesAdded int, totalWeight float64)
	OnRunFinished(final control.State)
}

// Nop is a Sink that discards every notification.
type Nop struct{}

// OnRunStarted implements Sink.
func (Nop) OnRunStarted(RunInfo) {}

// OnEdgeAccepted implements Sink.
func (Nop) OnEdgeAccepted(core.Edge) {}

// OnEdgeRejected implements Sink.
func (Nop) OnEdgeRejected(core.Edge) {}

// OnNodeStateChanged implements Sink.
func (Nop) OnNodeStateChanged(core.NodeID, core.NodeState) {}

// OnStatsChanged implements Sink.
func (Nop) OnStatsChanged(int, float64) {}

// OnRunFinished implements Sink.
func (Nop) OnRunFinished(control.State) {}

// Funcs adapts optional callbacks to a Sink; nil fields are skipped.
type Funcs struct {
	RunStarted       func(RunInfo)
	EdgeAccepted     func(core.Edge)
	EdgeRejected     func(core.Edge)
	NodeStateChanged func(core.NodeID, core.NodeState)
	StatsChanged     func(int, float64)
	RunFinished      func(control.State)
}

// OnRunStarted implements Sink.
func (f Funcs) OnRunStarted(info RunInfo) {
	if f.RunStarted != nil {
		f.RunStarted(info)
	}
}

// OnEdgeAccepted implements Sink.
func (f Funcs) OnEdgeAccepted(e core.Edge) {
	if f.EdgeAccepted != nil {
		f.EdgeAccepted(e)
	}
}

// OnEdgeRejected implements Sink.
func (f Funcs) OnEdgeRejected(e core.Edge) {
	if f.EdgeRejected != nil {
		f.EdgeRejected(e)
	}
}

// OnNodeStateChanged implements Sink.
func (f Funcs) OnNodeStateChanged(id core.NodeID, s core.NodeState) {
	if f.NodeStateChanged != nil {
		f.NodeStateChanged(id, s)
	}
}

// OnStatsChanged implements Sink.
func (f Funcs) OnStatsChanged(edgesAdded int, totalWeight float64) {
	if f.StatsChanged != nil {
		f.StatsChanged(edgesAdded, totalWeight)
	}
}

// OnRunFinished implements Sink.
func (f Funcs) OnRunFinished(final control.State) {
	if f.RunFinished != nil {
		f.RunFinished(final)
	}
}

// multi fans every call out to its sinks in order.
type multi []Sink

// Multi returns a Sink forwarding to every non-nil sink in order. With no
// sinks left it returns Nop.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	switch len(out) {
	case 0:
		return Nop{}
	case 1:
		return out[0]
	}

	return out
}

func (m multi) OnRunStarted(info RunInfo) {
	for _, s := range m {
		s.OnRunStarted(info)
	}
}

func (m multi) OnEdgeAccepted(e core.Edge) {
	for _, s := range m {
		s.OnEdgeAccepted(e)
	}
}

func (m multi) OnEdgeRejected(e core.Edge) {
	for _, s := range m {
		s.OnEdgeRejected(e)
	}
}

func (m multi) OnNodeStateChanged(id core.NodeID, st core.NodeState) {
	for _, s := range m {
		s.OnNodeStateChanged(id, st)
	}
}

func (m multi) OnStatsChanged(edgesAdded int, totalWeight float64) {
	for _, s := range m {
		s.OnStatsChanged(edgesAdded, totalWeight)
	}
}

func (m multi) OnRunFinished(final control.State) {
	for _, s := range m {
		s.OnRunFinished(final)
	}
}
