package mst

import (
	"context"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/progress"
)

// Canonical engine names reported in Result.Engine and Info.Engine.
const (
	EnginePrim          = "prim"
	EngineFredmanTarjan = "fredman-tarjan"
	EngineKruskal       = "kruskal"
	EngineBoruvka       = "boruvka"
	EngineReverseDelete = "reverse-delete"
)

// Both is not a catalog key: hosts expand it into concurrent prim and
// kruskal runs over the same graph.
const Both = "both"

// Algorithm runs one MST computation over g, reporting every visible change
// to sink and honouring ctl at each step boundary.
//
// A nil sink discards notifications; a nil ctl gets a fresh controller with
// default pacing. Stopping (through ctl or ctx) is not an error: the
// partial result comes back with State == control.Stopped.
type Algorithm func(ctx context.Context, g *core.Graph, sink progress.Sink, ctl *control.Controller) (Result, error)

// Result is the outcome of one run, complete or partial.
type Result struct {
	// Algorithm is the catalog name the run was started with.
	Algorithm string

	// Engine is the canonical implementation that executed it.
	Engine string

	// Edges holds the tree (or forest) edges in acceptance order.
	// For reverse-delete it is the surviving edge set in scan order.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64

	// EdgesAdded is len(Edges).
	EdgesAdded int

	// State is control.Completed or control.Stopped.
	State control.State

	// Approximate marks runs whose order does not guarantee a minimum tree.
	Approximate bool
}

// Keys returns the canonical keys of r.Edges in order.
func (r Result) Keys() []core.EdgeKey {
	out := make([]core.EdgeKey, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = e.Key()
	}

	return out
}

// Spanning reports whether r is a spanning tree over n nodes.
func (r Result) Spanning(n int) bool {
	return r.State == control.Completed && n > 0 && r.EdgesAdded == n-1
}
