package mock

import (
	"context"

	"github.com/fwojciec/pdftext"
)

var _ pdftext.Backend = (*Backend)(nil)

// Backend is a mock implementation of pdftext.Backend.
type Backend struct {
	NameFn    func() string
	ExtractFn func(ctx context.Context, path string) (*pdftext.Outcome, error)
}

func (b *Backend) Name() string {
	return b.NameFn()
}

func (b *Backend) Extract(ctx context.Context, path string) (*pdftext.Outcome, error) {
	return b.ExtractFn(ctx, path)
}
