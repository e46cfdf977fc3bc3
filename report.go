package pdftext

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportAttribution is the closing line of every report.
const ReportAttribution = "*Text extracted using Enhanced PDF Parsing*"

// Report describes one extraction rendered for a reader.
type Report struct {
	Result      *Result
	Source      string
	ExtractedAt time.Time
}

// Title returns the document base name without its extension.
func (r *Report) Title() string {
	return DocumentName(r.Source)
}

// DocumentName returns the base name of a path or URL without its extension.
func DocumentName(source string) string {
	if i := strings.IndexAny(source, "?#"); i >= 0 && IsRemote(source) {
		source = source[:i]
	}
	base := filepath.Base(strings.TrimRight(source, "/"))
	if base == "." || base == "/" {
		return "document"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FormatReport renders a report as markdown: a heading, a metadata block,
// the extracted text and an attribution line.
func FormatReport(r *Report) string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(r.Title())
	b.WriteString("\n\n")
	b.WriteString("**Extracted:** ")
	b.WriteString(r.ExtractedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("  \n**Source:** ")
	b.WriteString(r.Source)
	b.WriteString("  \n**Method:** ")
	b.WriteString(r.Result.MethodUsed)
	b.WriteString("  \n")
	b.WriteString(p.Sprintf("**Stats:** %d characters, %d words, %d pages",
		r.Result.CharacterCount, r.Result.WordCount, r.Result.PageCount))
	b.WriteString("\n\n---\n\n")
	b.WriteString(r.Result.FullText)
	b.WriteString("\n\n---\n\n")
	b.WriteString(ReportAttribution)
	b.WriteString("\n")
	return b.String()
}

// FormatStats renders the counts of a result on one line.
func FormatStats(r *Result) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d chars, %d words, %d pages", r.CharacterCount, r.WordCount, r.PageCount)
}

// ReportWriter persists rendered reports.
type ReportWriter interface {
	// WriteReport stores report at path, replacing any existing file.
	WriteReport(ctx context.Context, path string, report *Report) error
}
