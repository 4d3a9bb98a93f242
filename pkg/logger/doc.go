// Package logger builds the service's structured logger on top of log/slog.
//
// It adds two things to slog: context extractors, which copy request- or
// invocation-scoped values (such as the dispatch run id) onto every record,
// and optional Sentry fan-out for warnings and errors.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "json"},
//	    trigger.RunIDExtractor(),
//	)
//
//	ctx := ... // context carrying a run id
//	log.InfoContext(ctx, "dispatch completed", slog.Int("failed", 0))
//	// {"level":"INFO","msg":"dispatch completed","failed":0,"run_id":"6f1c..."}
//
// # Sentry Integration
//
// Set Config.Sentry.DSN to forward records to Sentry. Errors create issues,
// warnings are stored as logs. With an empty DSN, or if the SDK fails to
// initialize, the logger writes to stdout only.
//
// # Context Extractors
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call. Return false to skip the attribute.
package logger
