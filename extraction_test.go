package pdftext_test

import (
	"testing"

	"github.com/fwojciec/pdftext"
	"github.com/stretchr/testify/assert"
)

func TestNewExtraction(t *testing.T) {
	t.Parallel()

	result := newResult("Jane Doe", 1)
	e := pdftext.NewExtraction("cv.pdf", result)

	assert.Equal(t, "cv.pdf", e.Source)
	assert.True(t, e.Success)
	assert.Equal(t, pdftext.MethodLayout, e.Method)
	assert.Equal(t, "Jane Doe", e.Content)
	assert.Equal(t, 8, e.CharacterCount)
	assert.Equal(t, 2, e.WordCount)
	assert.Equal(t, 1, e.PageCount)

	result.MethodsAttempted[0] = "changed"
	assert.Equal(t, []string{pdftext.MethodLayout}, e.MethodsAttempted)
}

func TestExtraction_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		e := &pdftext.Extraction{}

		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(e.Validate()))
	})

	t.Run("requires method when successful", func(t *testing.T) {
		t.Parallel()

		e := &pdftext.Extraction{Source: "cv.pdf", Success: true}

		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(e.Validate()))
	})

	t.Run("accepts failed extraction without method", func(t *testing.T) {
		t.Parallel()

		e := pdftext.NewExtraction("cv.pdf", pdftext.FailedResult([]string{"layout (failed)"}))

		assert.NoError(t, e.Validate())
		assert.Equal(t, pdftext.AllMethodsFailed, e.Error)
	})
}
