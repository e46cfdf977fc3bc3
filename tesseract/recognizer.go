// Package tesseract implements pdftext.Recognizer using the Tesseract OCR
// engine through github.com/otiai10/gosseract/v2.
package tesseract

import (
	"context"
	"fmt"

	"github.com/fwojciec/pdftext"
	"github.com/otiai10/gosseract/v2"
)

// Ensure Recognizer implements pdftext.Recognizer at compile time.
var _ pdftext.Recognizer = (*Recognizer)(nil)

// DefaultLanguage is the Tesseract language pack used when none is set.
const DefaultLanguage = "eng"

// Recognizer runs Tesseract on page images. Each call uses its own client,
// so a Recognizer is safe for concurrent use.
type Recognizer struct {
	languages []string
	psm       gosseract.PageSegMode
	setPSM    bool
	dpi       int
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithLanguages sets the language packs to load, such as "eng" or "deu".
func WithLanguages(langs ...string) Option {
	return func(r *Recognizer) {
		if len(langs) > 0 {
			r.languages = langs
		}
	}
}

// WithPageSegMode sets the Tesseract page segmentation mode.
func WithPageSegMode(mode gosseract.PageSegMode) Option {
	return func(r *Recognizer) {
		r.psm = mode
		r.setPSM = true
	}
}

// WithDPI tells Tesseract the resolution images were rendered at.
func WithDPI(dpi int) Option {
	return func(r *Recognizer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// NewRecognizer creates a Recognizer with the given options.
func NewRecognizer(opts ...Option) *Recognizer {
	r := &Recognizer{languages: []string{DefaultLanguage}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the engine name.
func (r *Recognizer) Name() string {
	return "tesseract"
}

// Languages returns the configured language packs.
func (r *Recognizer) Languages() []string {
	return r.languages
}

// Recognize returns the text Tesseract finds in the PNG image.
func (r *Recognizer) Recognize(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(png) == 0 {
		return "", pdftext.Errorf(pdftext.EINVALID, "empty image")
	}

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetLanguage(r.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if r.setPSM {
		if err := c.SetPageSegMode(r.psm); err != nil {
			return "", fmt.Errorf("set page segmentation mode: %w", err)
		}
	}
	if r.dpi > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(r.dpi)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
