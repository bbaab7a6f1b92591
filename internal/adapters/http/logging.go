package http

import (
	"context"
	"log/slog"
)

const serviceName = "Fantasy-Team-Service"

func httpLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "http",
		"layer", "adapter",
	)
}

func logHTTPOperationError(ctx context.Context, req RequestInfo, operation string, statusCode int, code, message string, fields ...any) {
	attrs := []any{
		"operation", operation,
		"outcome", "failure",
		"status_code", statusCode,
		"error_code", code,
		"message", message,
		"method", req.Method,
		"path", req.Path,
		"request_id", req.RequestID,
	}
	attrs = append(attrs, fields...)
	if statusCode >= 500 {
		httpLogger().ErrorContext(ctx, "http operation failed", attrs...)
		return
	}
	httpLogger().WarnContext(ctx, "http operation failed", attrs...)
}
