package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtraction(source string) *pdftext.Extraction {
	return &pdftext.Extraction{
		Source:           source,
		Success:          true,
		Method:           pdftext.MethodLayout,
		MethodsAttempted: []string{pdftext.MethodLayout, pdftext.FailedMethod(pdftext.MethodMuPDF)},
		PageCount:        2,
		CharacterCount:   11,
		WordCount:        2,
		Content:          "hello world",
	}
}

func TestExtractionService_CreateExtraction(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		e := newExtraction("/docs/a.pdf")

		err := svc.CreateExtraction(context.Background(), e)
		require.NoError(t, err)

		assert.NotEmpty(t, e.ID, "ID should be generated")
		assert.Len(t, e.ContentHash, 16)
		assert.False(t, e.ExtractedAt.IsZero(), "ExtractedAt should be set")
	})

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		a := newExtraction("/docs/a.pdf")
		b := newExtraction("/docs/b.pdf")
		require.NoError(t, svc.CreateExtraction(context.Background(), a))
		require.NoError(t, svc.CreateExtraction(context.Background(), b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid extraction", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))

		err := svc.CreateExtraction(context.Background(), &pdftext.Extraction{})
		require.Error(t, err)
		assert.Equal(t, pdftext.EINVALID, pdftext.ErrorCode(err))
	})

	t.Run("records failed extractions", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		e := pdftext.NewExtraction("/docs/broken.pdf", pdftext.FailedResult([]string{
			pdftext.FailedMethod(pdftext.MethodLayout),
		}))

		require.NoError(t, svc.CreateExtraction(ctx, e))

		got, err := svc.FindExtractionByID(ctx, e.ID)
		require.NoError(t, err)
		assert.False(t, got.Success)
		assert.Equal(t, pdftext.AllMethodsFailed, got.Error)
		assert.Equal(t, []string{"layout (failed)"}, got.MethodsAttempted)
	})
}

func TestExtractionService_FindExtractionByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		e := newExtraction("https://example.com/cv.pdf")
		e.ExtractedAt = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateExtraction(ctx, e))

		got, err := svc.FindExtractionByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))

		_, err := svc.FindExtractionByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, pdftext.ENOTFOUND, pdftext.ErrorCode(err))
	})
}

func TestExtractionService_FindExtractions(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.ExtractionService) []*pdftext.Extraction {
		t.Helper()
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		var out []*pdftext.Extraction
		for i := 0; i < 4; i++ {
			e := newExtraction(fmt.Sprintf("/docs/%d.pdf", i%2))
			e.ExtractedAt = base.Add(time.Duration(i) * time.Hour)
			if i == 3 {
				e.Method = pdftext.MethodOCR
			}
			require.NoError(t, svc.CreateExtraction(context.Background(), e))
			out = append(out, e)
		}
		failed := pdftext.NewExtraction("/docs/0.pdf", pdftext.FailedResult(nil))
		failed.ExtractedAt = base.Add(10 * time.Hour)
		require.NoError(t, svc.CreateExtraction(context.Background(), failed))
		return append(out, failed)
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		all := seed(t, svc)

		got, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{})
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.Equal(t, all[4].ID, got[0].ID)
		assert.Equal(t, all[0].ID, got[4].ID)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		seed(t, svc)
		source := "/docs/1.pdf"

		got, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{Source: &source})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, e := range got {
			assert.Equal(t, source, e.Source)
		}
	})

	t.Run("filters by method and success", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		seed(t, svc)
		method := pdftext.MethodOCR
		failed := false

		byMethod, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{Method: &method})
		require.NoError(t, err)
		assert.Len(t, byMethod, 1)

		bySuccess, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{Success: &failed})
		require.NoError(t, err)
		require.Len(t, bySuccess, 1)
		assert.False(t, bySuccess[0].Success)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		all := seed(t, svc)

		page, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, all[3].ID, page[0].ID)
		assert.Equal(t, all[2].ID, page[1].ID)

		rest, err := svc.FindExtractions(context.Background(), pdftext.ExtractionFilter{Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})
}

func TestExtractionService_DeleteExtraction(t *testing.T) {
	t.Parallel()

	t.Run("removes the extraction", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))
		ctx := context.Background()
		e := newExtraction("/docs/a.pdf")
		require.NoError(t, svc.CreateExtraction(ctx, e))

		require.NoError(t, svc.DeleteExtraction(ctx, e.ID))

		_, err := svc.FindExtractionByID(ctx, e.ID)
		assert.Equal(t, pdftext.ENOTFOUND, pdftext.ErrorCode(err))
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewExtractionService(setupTestDB(t))

		err := svc.DeleteExtraction(context.Background(), "missing")
		assert.Equal(t, pdftext.ENOTFOUND, pdftext.ErrorCode(err))
	})
}
