package fitz

import (
	"context"
	"fmt"

	"github.com/fwojciec/pdftext"
	"github.com/gen2brain/go-fitz"
)

// Ensure Rasterizer implements pdftext.Rasterizer at compile time.
var _ pdftext.Rasterizer = (*Rasterizer)(nil)

// DefaultDPI is the resolution pages are rendered at for recognition.
const DefaultDPI = 300

// Rasterizer renders pages to PNG images.
type Rasterizer struct {
	dpi      float64
	maxPages int
}

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithDPI sets the render resolution. Values <= 0 keep the default.
func WithDPI(dpi float64) RasterizerOption {
	return func(r *Rasterizer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithMaxPages limits rendering to the first n pages. Zero renders all pages.
func WithMaxPages(n int) RasterizerOption {
	return func(r *Rasterizer) {
		if n >= 0 {
			r.maxPages = n
		}
	}
}

// NewRasterizer creates a Rasterizer with the given options.
func NewRasterizer(opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DPI returns the render resolution.
func (r *Rasterizer) DPI() float64 {
	return r.dpi
}

// Rasterize renders each page of the document at path.
func (r *Rasterizer) Rasterize(ctx context.Context, path string) ([]pdftext.PageImage, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	n := doc.NumPage()
	if r.maxPages > 0 && r.maxPages < n {
		n = r.maxPages
	}

	images := make([]pdftext.PageImage, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		png, err := doc.ImagePNG(i, r.dpi)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		images = append(images, pdftext.PageImage{Number: i + 1, PNG: png})
	}
	return images, nil
}
