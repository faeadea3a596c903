// Package logging provides a minimal logging facade for koseg.
//
// The Logger interface wraps the context-aware methods of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New binds to an existing *slog.Logger (slog.Default() when nil), NewJSON
// builds a JSON handler for a writer, and Discard drops everything.
//
// # Caller Text
//
// Input handed to the segmenter is user content. Log it only through Text,
// which keeps the byte length and drops the content:
//
//	logger.Debug(ctx, "segmenting", logging.Text("input", s))
//	// Logs: input.bytes=15
package logging
