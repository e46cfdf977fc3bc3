package pdftext_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDocument_Release(t *testing.T) {
	t.Parallel()

	t.Run("calls release once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		doc := pdftext.NewLocalDocument("/tmp/a.pdf", "https://example.com/a.pdf", func() error {
			calls++
			return errors.New("remove failed")
		})

		require.EqualError(t, doc.Release(), "remove failed")
		require.EqualError(t, doc.Release(), "remove failed")
		assert.Equal(t, 1, calls)
	})

	t.Run("nil release is a no-op", func(t *testing.T) {
		t.Parallel()

		doc := pdftext.NewLocalDocument("/tmp/a.pdf", "/tmp/a.pdf", nil)

		assert.NoError(t, doc.Release())
	})
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	assert.True(t, pdftext.IsRemote("https://example.com/cv.pdf"))
	assert.True(t, pdftext.IsRemote("HTTP://example.com/cv.pdf"))
	assert.False(t, pdftext.IsRemote("/home/jane/cv.pdf"))
	assert.False(t, pdftext.IsRemote("cv.pdf"))
}

func TestRouter_Acquire(t *testing.T) {
	t.Parallel()

	local := &mock.Acquirer{
		AcquireFn: func(_ context.Context, ref string) (*pdftext.LocalDocument, error) {
			return pdftext.NewLocalDocument(ref, ref, nil), nil
		},
	}
	remote := &mock.Acquirer{
		AcquireFn: func(_ context.Context, ref string) (*pdftext.LocalDocument, error) {
			return pdftext.NewLocalDocument("/tmp/download.pdf", ref, nil), nil
		},
	}

	t.Run("routes URLs to remote acquirer", func(t *testing.T) {
		t.Parallel()

		r := &pdftext.Router{Local: local, Remote: remote}
		doc, err := r.Acquire(context.Background(), "https://example.com/cv.pdf")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/download.pdf", doc.Path)
		assert.Equal(t, "https://example.com/cv.pdf", doc.Source)
	})

	t.Run("routes paths to local acquirer", func(t *testing.T) {
		t.Parallel()

		r := &pdftext.Router{Local: local, Remote: remote}
		doc, err := r.Acquire(context.Background(), "cv.pdf")

		require.NoError(t, err)
		assert.Equal(t, "cv.pdf", doc.Path)
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		t.Parallel()

		r := &pdftext.Router{Local: local, Remote: remote}
		_, err := r.Acquire(context.Background(), "")

		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(err))
	})

	t.Run("reports unavailable remote acquirer", func(t *testing.T) {
		t.Parallel()

		r := &pdftext.Router{Local: local}
		_, err := r.Acquire(context.Background(), "https://example.com/cv.pdf")

		assert.Equal(t, pdftext.EUNAVAILABLE, pdftext.ErrorCode(err))
	})
}
