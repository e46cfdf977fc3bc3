// Package ledongthuc implements the structural-layout backend using
// github.com/ledongthuc/pdf.
package ledongthuc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/pdftext"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements pdftext.Backend at compile time.
var _ pdftext.Backend = (*Extractor)(nil)

// InfoKeys are the document information entries copied into metadata.
var InfoKeys = []string{
	"Title", "Author", "Subject", "Keywords",
	"Creator", "Producer", "CreationDate", "ModDate",
}

// Extractor reconstructs page text from positioned text runs, reading
// rows top to bottom and runs within a row left to right.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the method name.
func (e *Extractor) Name() string {
	return pdftext.MethodLayout
}

// Extract reads the document at path.
func (e *Extractor) Extract(ctx context.Context, path string) (*pdftext.Outcome, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

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
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		text := strings.TrimSpace(joinRows(rows))
		if text == "" {
			continue
		}
		pages = append(pages, pdftext.Page{Number: i, Text: text})
	}

	return pdftext.NewOutcome(pages, total, metadata(r)), nil
}

func joinRows(rows pdf.Rows) string {
	ordered := make(pdf.Rows, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			ordered = append(ordered, row)
		}
	}
	// PDF user space grows upwards, so the top row has the highest position.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position > ordered[j].Position
	})

	lines := make([]string, 0, len(ordered))
	for _, row := range ordered {
		line := strings.TrimSpace(joinWords(row.Content))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func joinWords(words pdf.TextHorizontal) string {
	ordered := make([]pdf.Text, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].X < ordered[j].X
	})

	var b strings.Builder
	for _, w := range ordered {
		if w.S == "" {
			continue
		}
		if b.Len() > 0 && !separated(b.String(), w.S) {
			b.WriteByte(' ')
		}
		b.WriteString(w.S)
	}
	return b.String()
}

// separated reports whether whitespace already divides prev from next.
func separated(prev, next string) bool {
	return strings.HasSuffix(prev, " ") || strings.HasPrefix(next, " ") ||
		strings.HasSuffix(prev, "\t") || strings.HasPrefix(next, "\t")
}

func metadata(r *pdf.Reader) map[string]any {
	md := map[string]any{}
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}
	for _, key := range InfoKeys {
		v := info.Key(key)
		if v.IsNull() {
			continue
		}
		if s := strings.TrimSpace(v.Text()); s != "" {
			md[key] = s
		}
	}
	return md
}
