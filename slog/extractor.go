package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdftext"
)

// Ensure LoggingExtractor implements pdftext.Extractor.
var _ pdftext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs the chosen method.
type LoggingExtractor struct {
	next   pdftext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pdftext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(ctx context.Context, path string, useOCR bool) (result *pdftext.Result) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "ocr", useOCR}
		if result != nil {
			attrs = append(attrs,
				"success", result.Success,
				"method", result.MethodUsed,
				"attempted", result.MethodsAttempted,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin))
		e.logger.Info("extraction", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, path, useOCR)
}
