// Package rscpdf implements the legacy structural backend using rsc.io/pdf.
//
// The reader emits one text run per glyph in content-stream order. Runs are
// concatenated as they appear and a line break is inserted whenever the
// baseline moves, so multi-column layouts are not reconstructed.
package rscpdf

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fwojciec/pdftext"
	"rsc.io/pdf"
)

// Ensure Extractor implements pdftext.Backend at compile time.
var _ pdftext.Backend = (*Extractor)(nil)

// Glyphs whose baselines differ by less than this share a line.
const baselineTolerance = 1.0

// Extractor reads text runs in content-stream order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the method name.
func (e *Extractor) Name() string {
	return pdftext.MethodLegacy
}

// Extract reads the document at path.
func (e *Extractor) Extract(ctx context.Context, path string) (*pdftext.Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := r.NumPage()
	pages := make([]pdftext.Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text := strings.TrimSpace(joinText(p.Content().Text))
		if text == "" {
			continue
		}
		pages = append(pages, pdftext.Page{Number: i, Text: text})
	}

	return pdftext.NewOutcome(pages, total, metadata(r)), nil
}

func joinText(runs []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range runs {
		t := &runs[i]
		if prev != nil {
			switch {
			case math.Abs(t.Y-prev.Y) > baselineTolerance:
				b.WriteByte('\n')
			case gap(prev, t) && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " "):
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prev = t
	}
	return b.String()
}

// gap reports whether next starts noticeably after prev ends.
func gap(prev, next *pdf.Text) bool {
	if prev.FontSize <= 0 {
		return false
	}
	return next.X-(prev.X+prev.W) > prev.FontSize*0.25
}

func metadata(r *pdf.Reader) map[string]any {
	md := map[string]any{}
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}
	for _, key := range info.Keys() {
		if s := strings.TrimSpace(info.Key(key).Text()); s != "" {
			md[key] = s
		}
	}
	return md
}
