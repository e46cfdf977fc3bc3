// Package fs provides file-system access for documents and reports.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pdftext"
)

// ReportSuffix is appended to the document name to form a report file name.
const ReportSuffix = "_extracted.md"

// DefaultReportPath returns the report file name for a document source.
// Example: /scans/invoice.pdf → invoice_extracted.md
func DefaultReportPath(source string) string {
	return pdftext.DocumentName(source) + ReportSuffix
}

// Ensure ReportWriter implements pdftext.ReportWriter at compile time.
var _ pdftext.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as markdown files.
// Relative paths are resolved against the base directory.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a ReportWriter rooted at baseDir.
// An empty baseDir means the working directory.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport renders report and writes it to path. Content is written to a
// temporary file next to the target and renamed into place, so a reader never
// sees a partial report.
func (w *ReportWriter) WriteReport(ctx context.Context, path string, report *pdftext.Report) error {
	if path == "" {
		return pdftext.Errorf(pdftext.EINVALID, "report path required")
	}
	if report == nil || report.Result == nil {
		return pdftext.Errorf(pdftext.EINVALID, "report result required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := path
	if !filepath.IsAbs(path) && w.baseDir != "" {
		fullPath = filepath.Join(w.baseDir, path)
	}

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(pdftext.FormatReport(report)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
