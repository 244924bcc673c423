package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	assert.True(t, shouldCreateHTTPAPISpan("httpapi.Handler.MakePick"))
	assert.False(t, shouldCreateHTTPAPISpan("httpapi.RequestLogging"))
	assert.False(t, shouldCreateHTTPAPISpan("httpapi.writeError"))
}

func TestStartSpan_NoParentReturnsNoop(t *testing.T) {
	ctx := context.Background()

	got, span := startSpan(ctx, "httpapi.Handler.MakePick")
	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestStartSpan_NonHandlerNameKeepsParent(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	got, span := startSpan(ctx, "httpapi.writeError")
	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.Equal(t, parent, trace.SpanContextFromContext(got))
}
