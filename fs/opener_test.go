package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Opener implements pdftext.Acquirer at compile time.
var _ pdftext.Acquirer = (*fs.Opener)(nil)

func TestOpener_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("returns the local file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))

		doc, err := fs.NewOpener().Acquire(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Source)
		assert.True(t, filepath.IsAbs(doc.Path))
	})

	t.Run("release keeps the caller's file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))

		doc, err := fs.NewOpener().Acquire(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, doc.Release())
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewOpener().Acquire(context.Background(), "/nonexistent/doc.pdf")

		require.Error(t, err)
		assert.Equal(t, pdftext.ENOTFOUND, pdftext.ErrorCode(err))
		assert.Equal(t, "File '/nonexistent/doc.pdf' not found", pdftext.ErrorMessage(err))
	})

	t.Run("rejects a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewOpener().Acquire(context.Background(), t.TempDir())

		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(err))
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewOpener().Acquire(context.Background(), "")

		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(err))
	})
}
