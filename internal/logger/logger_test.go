package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// logAtStartup is Log as the package declares it, before any test swaps it.
var logAtStartup = Log

// restoreLog puts the current global logger back when the test ends.
func restoreLog(t *testing.T) {
	t.Helper()
	prev := Log
	t.Cleanup(func() { Set(prev) })
}

func TestLogIsNopUntilInit(t *testing.T) {
	for _, lvl := range []zapcore.Level{zapcore.DebugLevel, zapcore.ErrorLevel} {
		assert.False(t, logAtStartup.Core().Enabled(lvl), "level %s enabled before Init", lvl)
	}
}

func TestSetRebindsSugar(t *testing.T) {
	restoreLog(t)

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Sugar.Infof("num: %d", 4)
	Info("plain")
	Debug("below level")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "num: 4", entries[0].Message)
	assert.Equal(t, "plain", entries[1].Message)
}

func TestConsoleWritesToStderr(t *testing.T) {
	restoreLog(t)

	dir := t.TempDir()
	errFile, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	outFile, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	t.Cleanup(func() {
		errFile.Close()
		outFile.Close()
	})

	// the console core captures the stream when it is built
	origErr, origOut := os.Stderr, os.Stdout
	os.Stderr, os.Stdout = errFile, outFile
	err = Init("info", "")
	os.Stderr, os.Stdout = origErr, origOut
	require.NoError(t, err)

	Info("0.1 -> 2")
	Debug("hidden")
	Sync()

	stderr, err := os.ReadFile(errFile.Name())
	require.NoError(t, err)
	stdout, err := os.ReadFile(outFile.Name())
	require.NoError(t, err)

	assert.Contains(t, string(stderr), "0.1 -> 2")
	assert.NotContains(t, string(stderr), "hidden")
	assert.Contains(t, string(stderr), "\x1b[", "console levels are colored")
	assert.Empty(t, stdout, "stdout is reserved for reports")
}

func TestEncoderConfig(t *testing.T) {
	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Message: "header: 'cube'",
	}

	encode := func(terminal bool) string {
		buf, err := zapcore.NewConsoleEncoder(encoderConfig(terminal)).EncodeEntry(entry, nil)
		require.NoError(t, err)
		defer buf.Free()
		return buf.String()
	}

	file := encode(false)
	assert.Equal(t, "2026-03-04T05:06:07.000Z WARN header: 'cube'\n", file)

	terminal := encode(true)
	assert.True(t, strings.HasPrefix(terminal, "05:06:07 "), "got %q", terminal)
	assert.Contains(t, terminal, "\x1b[")
	assert.Contains(t, terminal, "WARN")
	assert.True(t, strings.HasSuffix(terminal, " header: 'cube'\n"), "got %q", terminal)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestFileOutput(t *testing.T) {
	restoreLog(t)

	path := filepath.Join(t.TempDir(), "meshfold.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false
	require.NoError(t, InitWithFileConfig("warn", cfg, false))

	Info("skipped")
	Warn("kept", zap.Int("triangles", 12))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), "WARN")
	assert.Contains(t, string(data), `{"triangles": 12}`)
	assert.NotContains(t, string(data), "\x1b[", "file levels are plain")
}

func TestFileRotation(t *testing.T) {
	restoreLog(t)

	dir := t.TempDir()
	cfg := DefaultFileConfig(filepath.Join(dir, "trace.log"))
	cfg.MaxSizeMB = 1
	cfg.Compress = false
	require.NoError(t, InitWithFileConfig("info", cfg, false))

	tracer := Log.Named("trace")
	pad := strings.Repeat("x", 256)
	for i := 0; i < 6000; i++ {
		tracer.Info(pad)
	}
	Sync()

	backups, err := filepath.Glob(filepath.Join(dir, "trace-*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, backups, "expected a rotated backup next to trace.log")
}
