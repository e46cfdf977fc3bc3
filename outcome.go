package pdftext

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Method names identify the backend that produced an outcome.
const (
	MethodLayout = "layout"
	MethodMuPDF  = "mupdf"
	MethodLegacy = "legacy"
	MethodOCR    = "ocr"
)

// AllMethodsFailed is the error reported when no backend produced an outcome.
const AllMethodsFailed = "All extraction methods failed"

// FailedMethod tags a method name as a failed attempt.
func FailedMethod(name string) string {
	return name + " (failed)"
}

// Page holds the extracted text of a single page.
type Page struct {
	// Number is the 1-based page number.
	Number int    `json:"pageNumber"`
	Text   string `json:"text"`
}

// Outcome is the result of one backend attempt against a document.
type Outcome struct {
	Success   bool   `json:"success"`
	FullText  string `json:"fullText"`
	Pages     []Page `json:"pages"`
	PageCount int    `json:"pageCount"`

	// CharacterCount and WordCount are always derived from FullText.
	CharacterCount int `json:"characterCount"`
	WordCount      int `json:"wordCount"`

	// Metadata carries backend-specific document properties.
	Metadata map[string]any `json:"metadata"`

	// Error is set only when Success is false.
	Error string `json:"error,omitempty"`
}

// NewOutcome builds a successful outcome from per-page text.
// Pages are ordered by number and their text is joined with a blank line.
func NewOutcome(pages []Page, pageCount int, metadata map[string]any) *Outcome {
	ordered := make([]Page, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	texts := make([]string, 0, len(ordered))
	for _, p := range ordered {
		texts = append(texts, p.Text)
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	o := &Outcome{
		Success:   true,
		FullText:  strings.TrimSpace(strings.Join(texts, "\n\n")),
		Pages:     ordered,
		PageCount: pageCount,
		Metadata:  metadata,
	}
	o.Recount()
	return o
}

// FailedOutcome builds an unsuccessful outcome carrying err as diagnostic.
func FailedOutcome(err error) *Outcome {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &Outcome{
		Pages:    []Page{},
		Metadata: map[string]any{},
		Error:    msg,
	}
}

// Recount recomputes CharacterCount and WordCount from FullText.
func (o *Outcome) Recount() {
	o.CharacterCount = CountCharacters(o.FullText)
	o.WordCount = CountWords(o.FullText)
}

// CountCharacters returns the number of characters in the trimmed text.
func CountCharacters(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Result is the outcome selected for a document, annotated with the
// backend that produced it and every backend that was attempted.
type Result struct {
	Outcome

	MethodUsed string `json:"methodUsed,omitempty"`

	// MethodsAttempted lists backends in attempt order; failures are
	// tagged with FailedMethod.
	MethodsAttempted []string `json:"methodsAttempted"`
}

// FailedResult returns the result reported when every backend failed.
func FailedResult(attempted []string) *Result {
	return &Result{
		Outcome: Outcome{
			Pages:    []Page{},
			Metadata: map[string]any{},
			Error:    AllMethodsFailed,
		},
		MethodsAttempted: attempted,
	}
}
