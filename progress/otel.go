package progress

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
)

// TracerName is the instrumentation name used when no tracer is given.
const TracerName = "github.com/katalvlaran/spanviz"

// TraceSink records one run as an OpenTelemetry span named "mst.run".
// Edge decisions become span events; the span ends on OnRunFinished with
// the final state and statistics as attributes.
type TraceSink struct {
	ctx         context.Context
	tracer      trace.Tracer
	span        trace.Span
	edgesAdded  int
	totalWeight float64
}

// NewTraceSink returns a TraceSink whose span is a child of ctx. A nil
// tracer falls back to the global provider.
func NewTraceSink(ctx context.Context, tracer trace.Tracer) *TraceSink {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return &TraceSink{ctx: ctx, tracer: tracer}
}

// OnRunStarted opens the run span.
func (t *TraceSink) OnRunStarted(info RunInfo) {
	_, t.span = t.tracer.Start(t.ctx, "mst.run", trace.WithAttributes(
		attribute.String("spanviz.algorithm", info.Algorithm),
		attribute.String("spanviz.engine", info.Engine),
		attribute.Int("spanviz.nodes", info.Nodes),
		attribute.Int("spanviz.edges", info.Edges),
		attribute.Bool("spanviz.approximate", info.Approximate),
	))
}

// OnEdgeAccepted adds an edge_accepted event.
func (t *TraceSink) OnEdgeAccepted(e core.Edge) { t.edgeEvent("edge_accepted", e) }

// OnEdgeRejected adds an edge_rejected event.
func (t *TraceSink) OnEdgeRejected(e core.Edge) { t.edgeEvent("edge_rejected", e) }

// OnNodeStateChanged implements Sink; node states are not traced.
func (t *TraceSink) OnNodeStateChanged(core.NodeID, core.NodeState) {}

// OnStatsChanged keeps the totals for the span attributes.
func (t *TraceSink) OnStatsChanged(edgesAdded int, totalWeight float64) {
	t.edgesAdded, t.totalWeight = edgesAdded, totalWeight
}

// OnRunFinished sets the status and ends the span.
func (t *TraceSink) OnRunFinished(final control.State) {
	if t.span == nil {
		return
	}
	t.span.SetAttributes(
		attribute.String("spanviz.state", final.String()),
		attribute.Int("spanviz.edges_added", t.edgesAdded),
		attribute.Float64("spanviz.total_weight", t.totalWeight),
	)
	if final == control.Completed {
		t.span.SetStatus(codes.Ok, "")
	}
	t.span.End()
	t.span = nil
}

func (t *TraceSink) edgeEvent(name string, e core.Edge) {
	if t.span == nil {
		return
	}
	t.span.AddEvent(name, trace.WithAttributes(
		attribute.Int("from", e.From),
		attribute.Int("to", e.To),
		attribute.Float64("weight", e.Weight),
	))
}
