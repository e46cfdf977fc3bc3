// Package extract runs the extraction backends against a document and
// selects the best outcome.
package extract

import (
	"context"

	"github.com/fwojciec/pdftext"
)

// Ensure Engine implements pdftext.Extractor at compile time.
var _ pdftext.Extractor = (*Engine)(nil)

// Engine attempts every configured backend in a fixed order: Layout,
// General, Legacy, then OCR when requested. A nil backend is skipped.
// Backends run sequentially and a failure never stops later attempts.
type Engine struct {
	Layout  pdftext.Backend
	General pdftext.Backend
	Legacy  pdftext.Backend
	OCR     pdftext.Backend
}

// NewEngine creates an Engine from the four backends.
func NewEngine(layout, general, legacy, ocr pdftext.Backend) *Engine {
	return &Engine{
		Layout:  layout,
		General: general,
		Legacy:  legacy,
		OCR:     ocr,
	}
}

// backends returns the enabled backends in attempt order.
func (e *Engine) backends(useOCR bool) []pdftext.Backend {
	all := []pdftext.Backend{e.Layout, e.General, e.Legacy}
	if useOCR {
		all = append(all, e.OCR)
	}
	enabled := make([]pdftext.Backend, 0, len(all))
	for _, b := range all {
		if b != nil {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

// Extract runs the backends against the document at path and returns the
// best result. It never fails: when no backend succeeds the result has
// Success false and Error set to pdftext.AllMethodsFailed.
func (e *Engine) Extract(ctx context.Context, path string, useOCR bool) *pdftext.Result {
	var candidates []Candidate
	attempted := make([]string, 0, 4)

	for _, b := range e.backends(useOCR) {
		name := b.Name()
		outcome := pdftext.Attempt(ctx, b, path)
		if !outcome.Success {
			attempted = append(attempted, pdftext.FailedMethod(name))
			continue
		}
		attempted = append(attempted, name)
		candidates = append(candidates, Candidate{Method: name, Outcome: outcome})
	}

	best, ok := ChooseBest(candidates)
	if !ok {
		return pdftext.FailedResult(attempted)
	}

	return &pdftext.Result{
		Outcome:          *best.Outcome,
		MethodUsed:       best.Method,
		MethodsAttempted: attempted,
	}
}
