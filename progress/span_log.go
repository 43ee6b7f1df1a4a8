package progress

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// SpanLogExporter is an OpenTelemetry span exporter that writes finished
// spans to a zap logger, one entry per span. It lets a CLI surface the
// TraceSink output without a collector.
type SpanLogExporter struct {
	log *zap.Logger
}

var _ sdktrace.SpanExporter = (*SpanLogExporter)(nil)

// NewSpanLogExporter returns an exporter logging at info level to log.
func NewSpanLogExporter(log *zap.Logger) *SpanLogExporter {
	return &SpanLogExporter{log: log}
}

// ExportSpans implements sdktrace.SpanExporter.
func (x *SpanLogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := []zap.Field{
			zap.String("span", s.Name()),
			zap.Stringer("trace_id", s.SpanContext().TraceID()),
			zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
			zap.Int("events", len(s.Events())),
			zap.String("status", s.Status().Code.String()),
		}
		for _, kv := range s.Attributes() {
			fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
		}
		x.log.Info("span", fields...)
	}

	return nil
}

// Shutdown implements sdktrace.SpanExporter.
func (x *SpanLogExporter) Shutdown(context.Context) error {
	return x.log.Sync()
}
