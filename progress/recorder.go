package progress

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
)

// EventKind identifies which Sink method produced an Event.
type EventKind int

const (
	RunStarted EventKind = iota
	EdgeAccepted
	EdgeRejected
	NodeStateChanged
	StatsChanged
	RunFinished
)

var eventKindNames = [...]string{
	RunStarted:       "run_started",
	EdgeAccepted:     "edge_accepted",
	EdgeRejected:     "edge_rejected",
	NodeStateChanged: "node_state_changed",
	StatsChanged:     "stats_changed",
	RunFinished:      "run_finished",
}

// String returns the snake_case name of k.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}

	return eventKindNames[k]
}

// Event is one recorded notification. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind        EventKind
	Info        RunInfo
	Edge        core.Edge
	Node        core.NodeID
	NodeState   core.NodeState
	EdgesAdded  int
	TotalWeight float64
	Final       control.State
}

// Recorder keeps every notification of one run in memory and mirrors the
// run state (tree edge set, node states, stats) so a host can redraw from
// it at any moment. It is safe to read while the run writes.
type Recorder struct {
	mu          sync.Mutex
	info        RunInfo
	events      []Event
	accepted    []core.Edge
	rejected    []core.Edge
	inTree      map[core.EdgeKey]struct{}
	nodes       map[core.NodeID]core.NodeState
	edgesAdded  int
	totalWeight float64
	final       control.State
	finished    int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		inTree: make(map[core.EdgeKey]struct{}),
		nodes:  make(map[core.NodeID]core.NodeState),
	}
}

// OnRunStarted implements Sink.
func (r *Recorder) OnRunStarted(info RunInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = info
	r.events = append(r.events, Event{Kind: RunStarted, Info: info})
}

// OnEdgeAccepted implements Sink.
func (r *Recorder) OnEdgeAccepted(e core.Edge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted = append(r.accepted, e)
	r.inTree[e.Key()] = struct{}{}
	r.events = append(r.events, Event{Kind: EdgeAccepted, Edge: e})
}

// OnEdgeRejected implements Sink.
func (r *Recorder) OnEdgeRejected(e core.Edge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = append(r.rejected, e)
	delete(r.inTree, e.Key())
	r.events = append(r.events, Event{Kind: EdgeRejected, Edge: e})
}

// OnNodeStateChanged implements Sink.
func (r *Recorder) OnNodeStateChanged(id core.NodeID, s core.NodeState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[id] = s
	r.events = append(r.events, Event{Kind: NodeStateChanged, Node: id, NodeState: s})
}

// OnStatsChanged implements Sink.
func (r *Recorder) OnStatsChanged(edgesAdded int, totalWeight float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edgesAdded, r.totalWeight = edgesAdded, totalWeight
	r.events = append(r.events, Event{Kind: StatsChanged, EdgesAdded: edgesAdded, TotalWeight: totalWeight})
}

// OnRunFinished implements Sink.
func (r *Recorder) OnRunFinished(final control.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.final = final
	r.finished++
	r.events = append(r.events, Event{Kind: RunFinished, Final: final})
}

// Info returns the RunInfo of the recorded run.
func (r *Recorder) Info() RunInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.info
}

// Events returns a copy of every notification in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Kinds returns the kind of every event in arrival order.
func (r *Recorder) Kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}

	return out
}

// Accepted returns the accepted edges in acceptance order.
func (r *Recorder) Accepted() []core.Edge {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]core.Edge(nil), r.accepted...)
}

// Rejected returns the rejected edges in rejection order.
func (r *Recorder) Rejected() []core.Edge {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]core.Edge(nil), r.rejected...)
}

// InTree reports whether k is currently accepted and not later rejected.
func (r *Recorder) InTree(k core.EdgeKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.inTree[k]

	return ok
}

// NodeState returns the last reported state of id (Unvisited if none).
func (r *Recorder) NodeState(id core.NodeID) core.NodeState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.nodes[id]
}

// Stats returns the last reported statistics.
func (r *Recorder) Stats() (edgesAdded int, totalWeight float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.edgesAdded, r.totalWeight
}

// Final returns the final state and how many times OnRunFinished fired.
func (r *Recorder) Final() (control.State, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.final, r.finished
}
