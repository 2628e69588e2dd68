// Package logging configures log/slog and exposes a small context-aware
// logger interface used by the HTTP adapter and the binaries.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key-value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
