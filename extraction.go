package pdftext

import (
	"context"
	"time"
)

// Extraction is a recorded extraction result. The engine keeps no history;
// callers that want one store Extractions through an ExtractionService.
type Extraction struct {
	ID               string    `json:"id"`
	Source           string    `json:"source"`
	Success          bool      `json:"success"`
	Method           string    `json:"method"`
	MethodsAttempted []string  `json:"methodsAttempted"`
	PageCount        int       `json:"pageCount"`
	CharacterCount   int       `json:"characterCount"`
	WordCount        int       `json:"wordCount"`
	Content          string    `json:"content"`
	ContentHash      string    `json:"contentHash"`
	Error            string    `json:"error,omitempty"`
	ExtractedAt      time.Time `json:"extractedAt"`
}

// NewExtraction records result as extracted from source.
func NewExtraction(source string, result *Result) *Extraction {
	attempted := make([]string, len(result.MethodsAttempted))
	copy(attempted, result.MethodsAttempted)
	return &Extraction{
		Source:           source,
		Success:          result.Success,
		Method:           result.MethodUsed,
		MethodsAttempted: attempted,
		PageCount:        result.PageCount,
		CharacterCount:   result.CharacterCount,
		WordCount:        result.WordCount,
		Content:          result.FullText,
		Error:            result.Error,
	}
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Source == "" {
		return Errorf(EINVALID, "extraction source required")
	}
	if e.Success && e.Method == "" {
		return Errorf(EINVALID, "extraction method required for successful extraction")
	}
	return nil
}

// ExtractionService represents a service for managing recorded extractions.
type ExtractionService interface {
	// CreateExtraction records a new extraction.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID      *string `json:"id"`
	Source  *string `json:"source"`
	Method  *string `json:"method"`
	Success *bool   `json:"success"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
