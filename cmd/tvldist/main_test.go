package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateAndDescribe(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tvl.csv")
	plotPath := filepath.Join(dir, "tvl.svg")

	out, err := run(t, "generate", "--n=1000", "--seed=12", "--bins=30", "--ascii", "--smooth",
		"--csv="+csvPath, "--plot="+plotPath)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 12")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "1600")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1601)
	assert.Equal(t, "TVL", lines[0])

	_, err = os.Stat(plotPath)
	require.NoError(t, err)

	out, err = run(t, "describe", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1600")
	assert.Contains(t, out, "75%")
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tvl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("n: 200\nprop_low: 0\nprop_high: 0\nseed: 4\n"), 0o600))

	out, err := run(t, "--config="+cfgPath, "generate", "--csv=", "--plot=")
	require.NoError(t, err)
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "seed 4")
}

func TestGenerateInvalid(t *testing.T) {
	_, err := run(t, "generate", "--min=100", "--max=50", "--mean=75", "--csv=", "--plot=")
	require.Error(t, err)
}
