// Package ocr implements the image-OCR backend. Pages are rendered to
// images by a pdftext.Rasterizer and read by a pdftext.Recognizer.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pdftext"
)

// Ensure Extractor implements pdftext.Backend at compile time.
var _ pdftext.Backend = (*Extractor)(nil)

// Extractor recognizes text on rendered page images.
type Extractor struct {
	rasterizer pdftext.Rasterizer
	recognizer pdftext.Recognizer
}

// NewExtractor creates an Extractor.
func NewExtractor(rasterizer pdftext.Rasterizer, recognizer pdftext.Recognizer) *Extractor {
	return &Extractor{rasterizer: rasterizer, recognizer: recognizer}
}

// Name returns the method name.
func (e *Extractor) Name() string {
	return pdftext.MethodOCR
}

// Extract renders the document at path and recognizes every page.
// A failure on any page fails the whole extraction.
func (e *Extractor) Extract(ctx context.Context, path string) (*pdftext.Outcome, error) {
	images, err := e.rasterizer.Rasterize(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	pages := make([]pdftext.Page, 0, len(images))
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := e.recognizer.Recognize(ctx, img.PNG)
		if err != nil {
			return nil, fmt.Errorf("recognize page %d: %w", img.Number, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, pdftext.Page{Number: img.Number, Text: text})
	}

	md := map[string]any{"engine": e.recognizer.Name()}
	if r, ok := e.rasterizer.(interface{ DPI() float64 }); ok {
		md["dpi"] = r.DPI()
	}

	return pdftext.NewOutcome(pages, len(images), md), nil
}
