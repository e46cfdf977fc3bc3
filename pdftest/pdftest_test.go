package pdftest_test

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/fwojciec/pdftext/pdftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_XrefPointsAtObjects(t *testing.T) {
	t.Parallel()

	doc := &pdftest.Document{
		Pages: [][]string{{"first page"}, {"second (page)"}},
		Info:  map[string]string{"Title": "Report"},
	}
	data := doc.Build()

	require.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4")))
	require.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))

	// startxref must point at the xref keyword
	idx := bytes.LastIndex(data, []byte("startxref\n"))
	require.NotEqual(t, -1, idx)
	rest := data[idx+len("startxref\n"):]
	offset, err := strconv.Atoi(string(rest[:bytes.IndexByte(rest, '\n')]))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data[offset:], []byte("xref\n")))

	// 1 catalog, 2 pages, 3 font, 2 pages x 2 objects, 1 info
	assert.Contains(t, string(data), "/Size 9")
	assert.Contains(t, string(data), `(second \(page\)) Tj`)
	assert.Contains(t, string(data), "/Title (Report)")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	doc := &pdftest.Document{Pages: [][]string{{}}}
	path := doc.WriteFile(t, "empty.pdf")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Build(), data)
	assert.NotContains(t, string(data), "/Info")
}

func TestBuild_FontWidthsMatchHelvetica(t *testing.T) {
	t.Parallel()

	data := string((&pdftest.Document{Pages: [][]string{{"x"}}}).Build())

	start := strings.Index(data, "/Widths [")
	require.NotEqual(t, -1, start)
	rest := data[start+len("/Widths ["):]
	widths := strings.Fields(rest[:strings.IndexByte(rest, ']')])

	require.Len(t, widths, 126-32+1)
	assert.Equal(t, "278", widths[' '-32])
	assert.Equal(t, "222", widths['i'-32])
	assert.Equal(t, "944", widths['W'-32])
	assert.Equal(t, "584", widths['~'-32])
}
