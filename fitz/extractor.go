// Package fitz implements the general-purpose structural backend and the
// page rasterizer using MuPDF through github.com/gen2brain/go-fitz.
package fitz

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pdftext"
	"github.com/gen2brain/go-fitz"
)

// Ensure Extractor implements pdftext.Backend at compile time.
var _ pdftext.Backend = (*Extractor)(nil)

// Extractor reads page text with MuPDF.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the method name.
func (e *Extractor) Name() string {
	return pdftext.MethodMuPDF
}

// Extract reads the document at path.
func (e *Extractor) Extract(ctx context.Context, path string) (*pdftext.Outcome, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	pages := make([]pdftext.Page, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, pdftext.Page{Number: i + 1, Text: text})
	}

	// MuPDF fills values from fixed-size buffers, so they carry NUL padding.
	md := map[string]any{}
	for k, v := range doc.Metadata() {
		if v = strings.TrimSpace(strings.TrimRight(v, "\x00")); v != "" {
			md[k] = v
		}
	}

	return pdftext.NewOutcome(pages, total, md), nil
}
