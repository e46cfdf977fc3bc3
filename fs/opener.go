package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/pdftext"
)

// Ensure Opener implements pdftext.Acquirer at compile time.
var _ pdftext.Acquirer = (*Opener)(nil)

// Opener resolves local file paths. The caller owns the file; releasing the
// document leaves it in place.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Acquire checks that path names a readable regular file.
func (o *Opener) Acquire(ctx context.Context, path string) (*pdftext.LocalDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, pdftext.Errorf(pdftext.EINVALID, "file path required")
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, pdftext.Errorf(pdftext.ENOTFOUND, "File '%s' not found", path)
	} else if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, pdftext.Errorf(pdftext.EINVALID, "'%s' is a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return pdftext.NewLocalDocument(abs, path, nil), nil
}
