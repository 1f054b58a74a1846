package api_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/nerkartran297/english-center-api/internal/api"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestOtelHandler_StampsTraceAndSpanIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(api.NewOtelHandler(slog.NewJSONHandler(&buf, nil)))

	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.InfoContext(ctx, "handling request")

	out := buf.String()
	require.Contains(t, out, `"trace_id":"0af7651916cd43dd8448eb211c80319c"`)
	require.Contains(t, out, `"span_id":"b7ad6b7169203331"`)
}

func TestOtelHandler_NoSpanNoStamp(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(api.NewOtelHandler(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(context.Background(), "no active span")

	require.NotContains(t, buf.String(), "trace_id")
}
