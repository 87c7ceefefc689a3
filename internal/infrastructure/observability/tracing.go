package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "parley-server/chat-api"
)

// GetTracer returns the tracer for the chat-api service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartTurnSpan starts a new span for one chat turn.
func StartTurnSpan(ctx context.Context, userID string, fileCount int, hasAttachment bool) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "chat.turn",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("chat.user_id", userID),
			attribute.Int("chat.file_count", fileCount),
			attribute.Bool("chat.has_attachment", hasAttachment),
		),
	)
	return ctx, span
}

// StartUploadSpan starts a new span for file ingestion.
func StartUploadSpan(ctx context.Context, name, contentType string, sizeBytes int64) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "file.ingest",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("file.name", name),
			attribute.String("file.content_type", contentType),
			attribute.Int64("file.size_bytes", sizeBytes),
		),
	)
	return ctx, span
}

// StartAnalysisSpan starts a new span for a file analysis run.
func StartAnalysisSpan(ctx context.Context, fileID string) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "file.analyze",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("file.id", fileID),
		),
	)
	return ctx, span
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
