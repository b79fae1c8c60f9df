package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables are package globals; clear the ones whose stale values
	// would change behavior between executions.
	genOut = ""
	presetName = ""
	presetFile = ""
	codegenCall = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateAnalyzePipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")

	_, err := execute(t,
		"generate",
		"--count", "24",
		"--trend", "100",
		"--noise", "0",
		"--categories", "x",
		"--seed", "7",
		"--out", path,
	)
	require.NoError(t, err)

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "x")

	// A pure trend series must analyze to the configured slope.
	assert.Contains(t, out, "100.0000")
}

func TestGenerateToStdout(t *testing.T) {
	out, err := execute(t,
		"generate",
		"--count", "3",
		"--noise", "0",
		"--seed", "1",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus three records")
	assert.Equal(t, "date,category,value", lines[0])
}

func TestGenerateInvalidConfigListsViolations(t *testing.T) {
	out, err := execute(t,
		"generate",
		"--count", "121",
		"--period", "0",
	)
	require.Error(t, err)
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "period")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestCodegenPrintsPrompt(t *testing.T) {
	out, err := execute(t,
		"codegen",
		"--count", "12",
		"--categories", "a,b",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "12 monthly data points")
	assert.Contains(t, out, "a, b")
}
