package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/2beens/fitstats/pkg"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, GetLevel("debug"))
	assert.Equal(t, log.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, log.ErrorLevel, GetLevel("error"))
	assert.Equal(t, log.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, log.InfoLevel, GetLevel("info"))
	assert.Equal(t, log.TraceLevel, GetLevel("trace"))
	assert.Equal(t, log.WarnLevel, GetLevel("warn"))
	assert.Equal(t, log.WarnLevel, GetLevel("warning"))
	assert.Equal(t, log.InfoLevel, GetLevel("nonsense"))
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, Output("", true))

	logFile := filepath.Join(t.TempDir(), "service")
	w := Output(logFile, false)
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, logFile+".log", lj.Filename)
	assert.True(t, lj.Compress)
	assert.False(t, lj.LocalTime)
	assert.Equal(t, 50, lj.MaxSize)

	w = Output(logFile+".log", true)
	cw, ok := w.(*pkg.CombinedWriter)
	require.True(t, ok)
	assert.Len(t, cw.Writers, 2)
}

func TestOutput_CreatesLogsDir(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "nested", "service.log")
	w := Output(logFile, false)
	_, ok := w.(*lumberjack.Logger)
	require.True(t, ok)

	exists, err := pkg.PathExists(filepath.Dir(logFile), true)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOutput_UnusableLogsDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	assert.Equal(t, os.Stdout, Output(filepath.Join(blocker, "service.log"), false))
}

func TestSetup_WritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFormatter(&log.TextFormatter{})

	logFile := filepath.Join(t.TempDir(), "fitstats.log")
	w := Setup(LoggerSetupParams{
		LogFileName:   logFile,
		LogLevel:      "debug",
		LogFormatJSON: true,
	})
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	defer func() { _ = lj.Close() }()

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.Debugf("dataset loaded: %d records", 42)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"dataset loaded: 42 records"`)
}

func TestSentryHook(t *testing.T) {
	hook := NewSentryHook([]log.Level{log.ErrorLevel})
	assert.Equal(t, []log.Level{log.ErrorLevel}, hook.Levels())

	// no sentry client bound to the hub, the event is dropped silently
	entry := log.NewEntry(log.StandardLogger()).WithError(errors.New("boom"))
	entry.Level = log.ErrorLevel
	entry.Message = "load dataset"
	assert.NoError(t, hook.Fire(entry))

	assert.Equal(t, sentry.LevelFatal, sentryLevel(log.PanicLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(log.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(log.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(log.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(log.TraceLevel))
}
