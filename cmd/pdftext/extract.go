package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/fs"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = fs.DefaultReportPath(c.Ref)
	}

	// Progress goes to stderr when the report itself is printed.
	progress := deps.Stdout
	if c.Stdout {
		progress = deps.Stderr
	}

	fmt.Fprintf(progress, "Extracting text from: %s\n", c.Ref)
	if !c.Stdout {
		fmt.Fprintf(progress, "Output file: %s\n", output)
	}
	fmt.Fprintf(progress, "OCR enabled: %t\n", !c.NoOCR)

	result, err := extractDocument(deps.Ctx, deps, c.Ref, !c.NoOCR)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", pdftext.ErrorMessage(err))
		return err
	}

	if !result.Success {
		fmt.Fprintf(deps.Stderr, "Extraction failed: %s\n", result.Error)
		if len(result.MethodsAttempted) > 0 {
			fmt.Fprintf(deps.Stderr, "Methods attempted: %s\n", strings.Join(result.MethodsAttempted, ", "))
		}
		return errors.New(result.Error)
	}

	fmt.Fprintf(progress, "Extraction successful using %s\n", result.MethodUsed)
	fmt.Fprintf(progress, "Stats: %s\n", pdftext.FormatStats(result))

	report := &pdftext.Report{
		Result:      result,
		Source:      c.Ref,
		ExtractedAt: deps.now(),
	}

	if c.Stdout {
		fmt.Fprint(deps.Stdout, pdftext.FormatReport(report))
		return nil
	}

	if err := deps.Reports.WriteReport(deps.Ctx, output, report); err != nil {
		fmt.Fprintf(deps.Stderr, "Error writing file: %v\n", err)
		return err
	}

	size := len(pdftext.FormatReport(report))
	fmt.Fprintln(progress, message.NewPrinter(language.English).Sprintf("Saved to: %s (%d bytes)", output, size))
	return nil
}

// extractDocument acquires ref, extracts its text and records the result
// when history is enabled. An error means the document could not be
// acquired; extraction failures are reported in the result.
func extractDocument(ctx context.Context, deps *Dependencies, ref string, useOCR bool) (*pdftext.Result, error) {
	doc, err := deps.Acquirer.Acquire(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := doc.Release(); err != nil {
			deps.logger().Warn("release document", "ref", ref, "err", err)
		}
	}()

	result := deps.Extractor.Extract(ctx, doc.Path, useOCR)

	if deps.Extractions != nil {
		if err := deps.Extractions.CreateExtraction(ctx, pdftext.NewExtraction(ref, result)); err != nil {
			deps.logger().Error("record extraction", "ref", ref, "err", err)
		}
	}

	return result, nil
}
