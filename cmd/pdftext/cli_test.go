package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/pdftext/cmd/pdftext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"extract", "batch", "history"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"extract", "doc.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "eng", cli.Lang)
	assert.Equal(t, 300, cli.DPI)
	assert.Equal(t, 30*time.Second, cli.Timeout)
	assert.Equal(t, "doc.pdf", cli.Extract.Ref)
	assert.Empty(t, cli.Extract.Output)
	assert.False(t, cli.Extract.NoOCR)
}

func TestCLI_BatchFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"batch", "a.pdf", "b.pdf", "-c", "8", "-o", "out", "--no-ocr"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.pdf", "b.pdf"}, cli.Batch.Refs)
	assert.Equal(t, 8, cli.Batch.Concurrency)
	assert.Equal(t, "out", cli.Batch.Out)
	assert.True(t, cli.Batch.NoOCR)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"extract", "batch", "history"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}
