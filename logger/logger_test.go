package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func restore(t *testing.T) {
	prev := Log
	t.Cleanup(func() {
		Log = prev
		zap.ReplaceGlobals(prev)
	})
}

func TestInitialize(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		restore(t)
		require.NoError(t, Initialize(Config{Level: "debug", Environment: "development"}))
		assert.True(t, Log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production writes a log file", func(t *testing.T) {
		restore(t)
		dir := filepath.Join(t.TempDir(), "logs")
		require.NoError(t, Initialize(Config{Level: "info", LogDir: dir, Environment: "production"}))
		assert.False(t, Log.Core().Enabled(zap.DebugLevel))

		Info("hello", zap.String("k", "v"))
		Sync()

		raw, err := os.ReadFile(filepath.Join(dir, "site.log"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"msg":"hello"`)
		assert.Contains(t, string(raw), `"k":"v"`)
	})

	t.Run("Invalid level", func(t *testing.T) {
		restore(t)
		err := Initialize(Config{Level: "loud"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level loud")
	})
}

func TestHelpersBeforeInitialize(t *testing.T) {
	restore(t)
	Log = zap.NewNop()

	assert.NotPanics(t, func() {
		Info("info")
		Warn("warn")
		Error("error")
		With(zap.String("a", "b")).Info("child")
		Sync()
	})
}
