package main

import (
	"fmt"

	"github.com/fwojciec/pdftext"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Extractions == nil {
		err := pdftext.Errorf(pdftext.EUNAVAILABLE, "history is disabled")
		fmt.Fprintln(deps.Stderr, "error: history is disabled. Set --db or PDFTEXT_DB to record extractions.")
		return err
	}

	if c.ID != "" {
		e, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pdftext.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, e.Content)
		return nil
	}

	filter := pdftext.ExtractionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Failed {
		success := false
		filter.Success = &success
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdftext.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'pdftext extract' to create one.")
		return nil
	}

	for _, e := range extractions {
		method := e.Method
		if !e.Success {
			method = "failed"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-6s  %d chars  %s\n",
			e.ID, e.ExtractedAt.Format("2006-01-02 15:04:05"), method, e.CharacterCount, e.Source)
	}

	return nil
}
