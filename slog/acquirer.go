package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdftext"
)

// Ensure LoggingAcquirer implements pdftext.Acquirer.
var _ pdftext.Acquirer = (*LoggingAcquirer)(nil)

// LoggingAcquirer wraps an Acquirer with logging.
type LoggingAcquirer struct {
	next   pdftext.Acquirer
	logger *slog.Logger
}

// NewLoggingAcquirer creates a new LoggingAcquirer.
func NewLoggingAcquirer(next pdftext.Acquirer, logger *slog.Logger) *LoggingAcquirer {
	return &LoggingAcquirer{next: next, logger: logger}
}

// Acquire delegates to the wrapped acquirer and logs the operation.
func (a *LoggingAcquirer) Acquire(ctx context.Context, ref string) (doc *pdftext.LocalDocument, err error) {
	defer func(begin time.Time) {
		var path string
		if doc != nil {
			path = doc.Path
		}
		a.logger.Info("acquire",
			"ref", ref,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Acquire(ctx, ref)
}
