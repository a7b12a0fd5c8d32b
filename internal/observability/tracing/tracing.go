package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID attaches a logger carrying a fresh traceId to ctx.
func InjectTraceID(ctx context.Context) context.Context {
	return InjectTraceIDWithFields(ctx, nil)
}

// InjectTraceIDWithFields is InjectTraceID plus extra string fields on the
// logger, e.g. the task or challenge being processed.
func InjectTraceIDWithFields(ctx context.Context, fields map[string]string) context.Context {
	id := uuid.New().String()
	logCtx := log.With().Str("traceId", id)
	for k, v := range fields {
		logCtx = logCtx.Str(k, v)
	}
	logger := logCtx.Logger()
	return logger.WithContext(ctx)
}
