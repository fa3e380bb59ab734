package apiclient

import (
	"context"
	"dr-portal/internal/pkg/constvars"
	"errors"

	"go.uber.org/zap"
)

// Call runs fn and, when it fails, writes exactly one error entry labelled
// with label before handing back the very same error value.
func Call[T any](ctx context.Context, log *zap.Logger, label string, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err == nil {
		return result, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		fields = append(fields,
			zap.String(constvars.LoggingMethodKey, apiErr.Method),
			zap.String(constvars.LoggingURLKey, apiErr.URL),
			zap.Int(constvars.LoggingStatusCodeKey, apiErr.StatusCode),
			zap.Bool(constvars.LoggingTimeoutKey, apiErr.Timeout),
		)
	}

	log.Error(label, fields...)
	return result, err
}
