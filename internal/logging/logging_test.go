package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-kit/log/level"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log.level=debug", "--log.format=JSON"}))
	require.Equal(t, LevelDebug, f.Level)
	require.Equal(t, FmtJSON, f.Format)

	require.Error(t, fs.Parse([]string{"--log.level=loud"}))
}

func TestInitialize(t *testing.T) {
	var buf bytes.Buffer
	logger := GetLogger("test")
	Initialize(&buf, FmtJSON, LevelInfo)

	require.NoError(t, level.Debug(logger).Log("msg", "hidden"))
	require.Zero(t, buf.Len())

	require.NoError(t, level.Info(logger).Log("msg", "shown"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "test", entry["module"])
	require.Equal(t, "info", entry["level"])
}
