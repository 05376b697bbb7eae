// Package logger carries the debug logger through a context.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying log.
func NewContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// L returns the logger stored in ctx, or a no-op logger.
func L(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if log, ok := ctx.Value(contextKey{}).(*zap.Logger); ok && log != nil {
		return log
	}
	return zap.NewNop()
}

// New returns a development logger on stderr when debug is set,
// otherwise a no-op logger.
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
