package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var stageTracer = otel.Tracer("football-analytics/internal/usecase")

var noopStageSpan = trace.SpanFromContext(context.Background())

// startStageSpan opens a child span for a pipeline stage or warehouse query.
// Runs started without an active trace get a noop span.
func startStageSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopStageSpan
	}
	return stageTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func matchAttr(matchID int64) attribute.KeyValue {
	return attribute.Int64("football.match_id", matchID)
}
