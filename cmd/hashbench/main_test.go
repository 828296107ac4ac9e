package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chained_hashtable/bench"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestHelp(t *testing.T) {
	code, out, _ := runArgs(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: hashbench")
	assert.Contains(t, out, "--capacity")
}

func TestUnknownFlag(t *testing.T) {
	code, _, errOut := runArgs(t, "--bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error:")
}

func TestInvalidOverrides(t *testing.T) {
	code, _, errOut := runArgs(t, "--capacity", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "capacity must be positive")

	code, _, errOut = runArgs(t, "--ops", "get,scan")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown operation")
}

func TestPrintConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"capacity": 32, "rounds": 2 /* quick */}`), 0o600))

	code, out, errOut := runArgs(t, "-c", path, "--rounds", "5", "--print-config")
	require.Equal(t, 0, code, errOut)

	var cfg bench.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 32, cfg.Capacity)
	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, bench.DefaultConfig().Warmup, cfg.Warmup)
}

func TestRunWritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	code, out, errOut := runArgs(t,
		"--capacity", "8", "--keys", "32", "--rounds", "2", "--warmup", "0",
		"--ops", "get", "-o", path,
	)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "capacity 8, keys 32")
	assert.Contains(t, out, "chained")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report, err := bench.ReadReport(data)
	require.NoError(t, err)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, path, report.Config.Output)
}
