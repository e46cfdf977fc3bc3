package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ExtractionService is expected
	var _ pdftext.ExtractionService = &mock.ExtractionService{}
}

func TestExtractionService_CreateExtraction(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateExtractionFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pdftext.Extraction
		s := &mock.ExtractionService{
			CreateExtractionFn: func(_ context.Context, e *pdftext.Extraction) error {
				calledWith = e
				return nil
			},
		}

		e := &pdftext.Extraction{
			Source:  "https://example.com/cv.pdf",
			Success: true,
			Method:  pdftext.MethodLayout,
			Content: "Jane Doe",
		}

		err := s.CreateExtraction(context.Background(), e)

		require.NoError(t, err)
		assert.Equal(t, e, calledWith)
	})
}
