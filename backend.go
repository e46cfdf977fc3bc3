package pdftext

import (
	"context"
	"fmt"
	"strings"
)

// Backend extracts text from a local PDF file using one technique.
// Implementations only read the file; they never modify or delete it.
type Backend interface {
	// Name returns the method name reported in results.
	Name() string

	// Extract reads the document at path and returns its text.
	Extract(ctx context.Context, path string) (*Outcome, error)
}

// Attempt runs backend against path and always returns an outcome.
// A returned error or a panic inside the backend becomes a failed outcome,
// and a successful outcome has its text trimmed and its counts recomputed.
func Attempt(ctx context.Context, backend Backend, path string) *Outcome {
	s := Settle(func() (*Outcome, error) {
		return backend.Extract(ctx, path)
	})
	if s.Err != nil {
		return FailedOutcome(s.Err)
	}
	if s.Value == nil {
		return FailedOutcome(fmt.Errorf("%s returned no outcome", backend.Name()))
	}
	o := s.Value
	if !o.Success {
		if o.Error == "" {
			o.Error = "unknown error"
		}
		o.FullText = ""
	}
	o.FullText = strings.TrimSpace(o.FullText)
	o.Recount()
	return o
}

// Extractor produces a single result for a local document.
type Extractor interface {
	// Extract never fails; callers branch on Result.Success.
	Extract(ctx context.Context, path string, useOCR bool) *Result
}

// PageImage is a rendered page.
type PageImage struct {
	// Number is the 1-based page number.
	Number int
	// PNG holds the encoded image.
	PNG []byte
}

// Rasterizer renders document pages to images.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) ([]PageImage, error)
}

// Recognizer performs optical character recognition on an image.
type Recognizer interface {
	// Name identifies the OCR engine.
	Name() string

	// Recognize returns the text found in the PNG-encoded image.
	Recognize(ctx context.Context, png []byte) (string, error)
}
