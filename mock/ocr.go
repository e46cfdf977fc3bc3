package mock

import (
	"context"

	"github.com/fwojciec/pdftext"
)

var (
	_ pdftext.Rasterizer = (*Rasterizer)(nil)
	_ pdftext.Recognizer = (*Recognizer)(nil)
)

// Rasterizer is a mock implementation of pdftext.Rasterizer.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, path string) ([]pdftext.PageImage, error)
}

func (r *Rasterizer) Rasterize(ctx context.Context, path string) ([]pdftext.PageImage, error) {
	return r.RasterizeFn(ctx, path)
}

// Recognizer is a mock implementation of pdftext.Recognizer.
type Recognizer struct {
	NameFn      func() string
	RecognizeFn func(ctx context.Context, png []byte) (string, error)
}

func (r *Recognizer) Name() string {
	return r.NameFn()
}

func (r *Recognizer) Recognize(ctx context.Context, png []byte) (string, error) {
	return r.RecognizeFn(ctx, png)
}
