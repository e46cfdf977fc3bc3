package mock

import (
	"context"

	"github.com/fwojciec/pdftext"
)

var _ pdftext.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of pdftext.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, path string, report *pdftext.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, path string, report *pdftext.Report) error {
	return w.WriteReportFn(ctx, path, report)
}
