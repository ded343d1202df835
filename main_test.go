package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRunSums(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "none.yaml")
	out, errOut, err := execute(t, "1 -2 3\n\n", "sums", "--no-clear", "-c", noConfig)
	require.NoError(t, err)
	assert.Contains(t, out, defaultTitles["sums"])
	assert.Contains(t, out, "Average:       2.000      -2.000       0.667")
	assert.NotContains(t, out, "samples")
	assert.Empty(t, errOut)

	out, _, err = execute(t, "1 -2 3\n\n", "sums", "--no-clear", "-c", noConfig, "--plot")
	require.NoError(t, err)
	assert.Contains(t, out, "samples")
}

func TestRunWithConfigAndLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "linecalc.log")
	name := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(name, []byte("clear: false\ntitles:\n  change: Coins please\n"), 0o644))

	out, errOut, err := execute(t, "0.41\n2\n-1\n", "change", "-c", name, "--log", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Coins please")
	assert.Contains(t, out, "1 Quarters")
	assert.Contains(t, errOut, "between 0 and 1")

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Rejected input (out of range)")
	assert.Contains(t, string(logged), "Session change finished")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "", "points", "extra")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(bad, []byte("clear: [\n"), 0o644))
	_, _, err = execute(t, "", "points", "-c", bad)
	assert.Error(t, err)

	_, _, err = execute(t, "", "points", "--no-clear", "-c", filepath.Join(t.TempDir(), "none.yaml"),
		"--log", filepath.Join(t.TempDir(), "x.log"), "--log-level", "loud")
	assert.Error(t, err)
}

func TestRunAllTools(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "none.yaml")
	for _, tt := range []struct {
		tool, input, want string
	}{
		{"points", "1 2\n\n", "{x: 1, y: 2}"},
		{"sentences", "abc 1\n\n", "Numeric Characters:   1"},
		{"palindrome", "Abba\n\n", "is a palindrome"},
	} {
		out, _, err := execute(t, tt.input, tt.tool, "--no-clear", "-c", noConfig)
		require.NoError(t, err, tt.tool)
		assert.Contains(t, out, tt.want, tt.tool)
		assert.Contains(t, out, goodbye, tt.tool)
	}
}
