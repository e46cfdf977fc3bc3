package mock

import (
	"context"

	"github.com/fwojciec/pdftext"
)

var _ pdftext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pdftext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string, useOCR bool) *pdftext.Result
}

func (e *Extractor) Extract(ctx context.Context, path string, useOCR bool) *pdftext.Result {
	return e.ExtractFn(ctx, path, useOCR)
}
