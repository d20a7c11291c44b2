package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestStartStageSpan_WithoutTraceIsNoop(t *testing.T) {
	ctx := context.Background()

	got, span := startStageSpan(ctx, "usecase.SilverService.Build")
	defer span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestStartStageSpan_JoinsActiveTrace(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	got, span := startStageSpan(ctx, "usecase.QueryService.ShotMap", matchAttr(1))
	defer span.End()

	assert.Equal(t, parent.TraceID(), trace.SpanContextFromContext(got).TraceID())

	_, unnamed := startStageSpan(ctx, "")
	assert.False(t, unnamed.SpanContext().IsValid())
}
