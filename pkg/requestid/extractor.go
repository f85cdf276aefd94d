package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/numberfield/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor adding the request ID
// of the record's context under "request_id".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
