package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command. Each document is extracted independently;
// one failure never stops the others.
func (c *BatchCmd) Run(deps *Dependencies) error {
	paths := reportPaths(c.Out, c.Refs)
	results := make([]pdftext.Settled[*pdftext.Result], len(c.Refs))

	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, ref := range c.Refs {
		g.Go(func() error {
			results[i] = pdftext.Settle(func() (*pdftext.Result, error) {
				return c.extractOne(deps.Ctx, deps, ref, paths[i])
			})
			return nil
		})
	}
	_ = g.Wait()

	var extracted int
	for i, ref := range c.Refs {
		s := results[i]
		switch {
		case s.Err != nil:
			fmt.Fprintf(deps.Stdout, "  fail %s: %s\n", ref, errorText(s.Err))
		case !s.Value.Success:
			fmt.Fprintf(deps.Stdout, "  fail %s: %s (%s)\n", ref, s.Value.Error, strings.Join(s.Value.MethodsAttempted, ", "))
		default:
			extracted++
			fmt.Fprintf(deps.Stdout, "  ok   %s -> %s [%s, %s]\n", ref, paths[i], s.Value.MethodUsed, pdftext.FormatStats(s.Value))
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d of %d\n", extracted, len(c.Refs))
	if extracted < len(c.Refs) {
		return fmt.Errorf("%d of %d documents failed", len(c.Refs)-extracted, len(c.Refs))
	}
	return nil
}

func (c *BatchCmd) extractOne(ctx context.Context, deps *Dependencies, ref, output string) (*pdftext.Result, error) {
	result, err := extractDocument(ctx, deps, ref, !c.NoOCR)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	report := &pdftext.Report{
		Result:      result,
		Source:      ref,
		ExtractedAt: deps.now(),
	}
	if err := deps.Reports.WriteReport(ctx, output, report); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	return result, nil
}

// reportPaths assigns each reference a report file in dir. Documents that
// share a name get a numeric suffix so no report overwrites another.
func reportPaths(dir string, refs []string) []string {
	used := make(map[string]bool, len(refs))
	paths := make([]string, len(refs))
	for i, ref := range refs {
		base := pdftext.DocumentName(ref)
		name := base
		for n := 2; used[name]; n++ {
			name = base + "-" + strconv.Itoa(n)
		}
		used[name] = true
		paths[i] = filepath.Join(dir, name+fs.ReportSuffix)
	}
	return paths
}

// errorText prefers the application message and falls back to the full
// error for internal failures.
func errorText(err error) string {
	if pdftext.ErrorCode(err) == pdftext.EINTERNAL {
		return err.Error()
	}
	return pdftext.ErrorMessage(err)
}
