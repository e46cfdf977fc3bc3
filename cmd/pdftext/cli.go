package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pdftext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Acquirer    pdftext.Acquirer
	Extractor   pdftext.Extractor
	Reports     pdftext.ReportWriter
	Extractions pdftext.ExtractionService // nil when history is disabled
	Now         func() time.Time
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" env:"PDFTEXT_DB" help:"Record extractions in this SQLite database"`
	Lang    string        `name:"lang" env:"PDFTEXT_OCR_LANG" default:"eng" help:"Tesseract languages, joined with + (e.g. eng+deu)"`
	DPI     int           `name:"dpi" env:"PDFTEXT_OCR_DPI" default:"300" help:"Resolution pages are rendered at for OCR"`
	Timeout time.Duration `default:"30s" help:"Timeout for each document download attempt"`
	Verbose bool          `short:"v" help:"Log backend attempts to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract text from one PDF into a markdown report"`
	Batch   BatchCmd   `cmd:"" help:"Extract text from several PDFs concurrently"`
	History HistoryCmd `cmd:"" help:"List recorded extractions"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Ref    string `arg:"" help:"PDF file path or http(s) URL"`
	Output string `arg:"" optional:"" help:"Report file (default <name>_extracted.md)"`
	NoOCR  bool   `name:"no-ocr" help:"Skip OCR for scanned documents"`
	Stdout bool   `name:"stdout" help:"Print the report instead of writing a file"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Refs        []string `arg:"" help:"PDF file paths or http(s) URLs"`
	Out         string   `short:"o" default:"." help:"Directory reports are written to"`
	Concurrency int      `short:"c" default:"4" help:"Documents extracted at once"`
	NoOCR       bool     `name:"no-ocr" help:"Skip OCR for scanned documents"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Print the text of this extraction"`
	Source string `help:"Only show extractions of this source"`
	Failed bool   `help:"Only show failed extractions"`
	Limit  int    `short:"n" default:"20" help:"Maximum extractions to list"`
}
