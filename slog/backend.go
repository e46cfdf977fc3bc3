// Package slog provides logging decorators for the pdftext interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdftext"
)

// Ensure LoggingBackend implements pdftext.Backend.
var _ pdftext.Backend = (*LoggingBackend)(nil)

// LoggingBackend wraps a Backend and logs each attempt.
type LoggingBackend struct {
	next   pdftext.Backend
	logger *slog.Logger
}

// NewLoggingBackend creates a new LoggingBackend.
func NewLoggingBackend(next pdftext.Backend, logger *slog.Logger) *LoggingBackend {
	return &LoggingBackend{next: next, logger: logger}
}

// Name delegates to the wrapped backend.
func (b *LoggingBackend) Name() string {
	return b.next.Name()
}

// Extract delegates to the wrapped backend and logs the attempt.
func (b *LoggingBackend) Extract(ctx context.Context, path string) (out *pdftext.Outcome, err error) {
	defer func(begin time.Time) {
		var success bool
		var chars, pages int
		if out != nil {
			success, chars, pages = out.Success, out.CharacterCount, out.PageCount
		}
		b.logger.Info("backend attempt",
			"method", b.next.Name(),
			"path", path,
			"success", success && err == nil,
			"chars", chars,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Extract(ctx, path)
}
