package trigger

import (
	"context"
	"log/slog"
)

// Invocation sources recorded on each Report.
const (
	SourceSchedule    = "schedule"
	SourceManual      = "manual"
	SourceCLI         = "cli"
	sourceUnspecified = "unspecified"
)

type runIDKey struct{}

type sourceKey struct{}

// WithSource tags ctx with the thing that fired the invocation.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

// SourceFromContext returns the invocation source stored in ctx.
func SourceFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey{}).(string); ok && s != "" {
		return s
	}
	return sourceUnspecified
}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the id of the dispatch ctx belongs to, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds run_id to every log record emitted inside a dispatch.
// Compatible with logger.ContextExtractor.
func RunIDExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := RunIDFromContext(ctx); ok {
			return slog.String("run_id", id), true
		}
		return slog.Attr{}, false
	}
}
