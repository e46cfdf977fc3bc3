package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pdftext"
	"github.com/fwojciec/pdftext/extract"
	"github.com/fwojciec/pdftext/fitz"
	"github.com/fwojciec/pdftext/fs"
	pdfhttp "github.com/fwojciec/pdftext/http"
	"github.com/fwojciec/pdftext/ledongthuc"
	"github.com/fwojciec/pdftext/ocr"
	"github.com/fwojciec/pdftext/rscpdf"
	pdfslog "github.com/fwojciec/pdftext/slog"
	"github.com/fwojciec/pdftext/sqlite"
	"github.com/fwojciec/pdftext/tesseract"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides --db when set before calling Run().
	DBPath string

	// SQLite database used by the history service. Nil when history is off.
	DB *sqlite.DB

	// Services for end-to-end testing. Built from flags when nil.
	Extractor   pdftext.Extractor
	Extractions pdftext.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdftext"),
		kong.Description("Extract text from PDF documents using the best available method."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdftext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	// Open the history database when one is configured
	dbPath := cli.DB
	if m.DBPath != "" {
		dbPath = m.DBPath
	}
	if m.Extractions == nil && dbPath != "" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Fprintf(stderr, "Hint: Set PDFTEXT_DB to use a different database path\n")
				return fmt.Errorf("failed to create database directory %q: %w", dir, err)
			}
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PDFTEXT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		m.Extractions = sqlite.NewExtractionService(m.DB)
	}
	deps.Extractions = m.Extractions

	if m.Extractor == nil {
		m.Extractor = newEngine(cli, deps.Logger)
	}
	deps.Extractor = pdfslog.NewLoggingExtractor(m.Extractor, deps.Logger)

	downloader := pdfhttp.NewDownloader(
		pdfhttp.WithTimeout(cli.Timeout),
		pdfhttp.WithLimiter(pdfhttp.NewHostLimiter(downloadRate)),
		pdfhttp.WithRetryLog(func(format string, args ...any) {
			deps.Logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
		}),
	)
	deps.Acquirer = pdfslog.NewLoggingAcquirer(&pdftext.Router{
		Local:  fs.NewOpener(),
		Remote: downloader,
	}, deps.Logger)
	deps.Reports = fs.NewReportWriter("")

	return kongCtx.Run(deps)
}

// downloadRate limits requests per second to any one host.
const downloadRate = 1.0

// newEngine wires every backend, each wrapped with logging.
func newEngine(cli *CLI, logger *slog.Logger) *extract.Engine {
	wrap := func(b pdftext.Backend) pdftext.Backend {
		return pdfslog.NewLoggingBackend(b, logger)
	}

	rasterizer := fitz.NewRasterizer(fitz.WithDPI(float64(cli.DPI)))
	recognizer := tesseract.NewRecognizer(
		tesseract.WithLanguages(languages(cli.Lang)...),
		tesseract.WithDPI(cli.DPI),
	)

	return extract.NewEngine(
		wrap(ledongthuc.NewExtractor()),
		wrap(fitz.NewExtractor()),
		wrap(rscpdf.NewExtractor()),
		wrap(ocr.NewExtractor(rasterizer, recognizer)),
	)
}

// languages splits a Tesseract language list such as "eng+deu".
func languages(s string) []string {
	var langs []string
	for _, l := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' }) {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}

// newLogger logs debug details with --verbose and only errors otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
