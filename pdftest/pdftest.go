// Package pdftest builds small, valid PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// Document describes a PDF to build. Each page is a list of text lines,
// drawn top to bottom in 12pt Helvetica. A page with no lines has no text.
type Document struct {
	Pages [][]string
	Info  map[string]string
}

// Build returns the encoded PDF.
func (d *Document) Build() []byte {
	w := &writer{}
	w.buf.WriteString("%PDF-1.4\n")

	// Object numbers: 1 catalog, 2 pages, 3 font, then page/content pairs, then info.
	pageCount := len(d.Pages)
	pageObj := func(i int) int { return 4 + 2*i }
	infoObj := 4 + 2*pageCount

	w.object(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pageCount)
	for i := range d.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageObj(i))
	}
	w.object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount))

	w.object(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding"+
		" /FirstChar 32 /LastChar 126 /Widths ["+helveticaWidths+"] >>")

	for i, lines := range d.Pages {
		content := pageContent(lines)
		w.object(pageObj(i), fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]"+
			" /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", pageObj(i)+1))
		w.object(pageObj(i)+1, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	trailerInfo := ""
	size := infoObj
	if len(d.Info) > 0 {
		entries := make([]string, 0, len(d.Info))
		for _, k := range sortedKeys(d.Info) {
			entries = append(entries, fmt.Sprintf("/%s (%s)", k, escape(d.Info[k])))
		}
		w.object(infoObj, "<< "+strings.Join(entries, " ")+" >>")
		trailerInfo = fmt.Sprintf(" /Info %d 0 R", infoObj)
		size = infoObj + 1
	}

	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", size)
	w.buf.WriteString("0000000000 65535 f \n")
	for n := 1; n < size; n++ {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", w.offsets[n])
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R%s >>\nstartxref\n%d\n%%%%EOF\n", size, trailerInfo, xref)
	return w.buf.Bytes()
}

// helveticaWidths are the Helvetica AFM advances for WinAnsi codes 32..126.
// Readers that lay out glyphs with the built-in font metrics insert spaces
// inside words when these disagree with the font.
const helveticaWidths = "278 278 355 556 556 889 667 191 333 333 389 584 278 333 278 278 " +
	"556 556 556 556 556 556 556 556 556 556 278 278 584 584 584 556 " +
	"1015 667 667 722 722 667 611 778 722 278 500 667 556 833 722 778 " +
	"667 778 722 667 611 722 667 944 667 667 611 278 278 278 469 556 " +
	"333 556 556 500 556 556 278 556 556 222 222 500 222 833 556 556 " +
	"556 556 333 500 278 556 500 722 500 500 500 334 260 334 584"

// WriteFile writes the PDF into a temporary directory and returns its path.
func (d *Document) WriteFile(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, d.Build(), 0644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}

// WriteRaw writes data into a temporary directory and returns its path.
func WriteRaw(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

type writer struct {
	buf     bytes.Buffer
	offsets map[int]int
}

func (w *writer) object(n int, body string) {
	if w.offsets == nil {
		w.offsets = make(map[int]int)
	}
	w.offsets[n] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", n, body)
}

func pageContent(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("0 -16 Td\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escape(line))
	}
	b.WriteString("ET")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
