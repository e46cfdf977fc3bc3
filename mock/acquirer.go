package mock

import (
	"context"

	"github.com/fwojciec/pdftext"
)

var _ pdftext.Acquirer = (*Acquirer)(nil)

// Acquirer is a mock implementation of pdftext.Acquirer.
type Acquirer struct {
	AcquireFn func(ctx context.Context, ref string) (*pdftext.LocalDocument, error)
}

func (a *Acquirer) Acquire(ctx context.Context, ref string) (*pdftext.LocalDocument, error) {
	return a.AcquireFn(ctx, ref)
}
