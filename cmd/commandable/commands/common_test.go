package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/interceptor"
	"github.com/erraggy/commandable/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		cfg := config.Default()
		cfg.Log.Format = config.FormatJSON
		var buf bytes.Buffer

		logger, err := NewLogger(cfg, &buf)
		require.NoError(t, err)
		logger.Info("hello", "k", "v")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("text format honors level", func(t *testing.T) {
		cfg := config.Default()
		cfg.Log.Level = "warn"
		var buf bytes.Buffer

		logger, err := NewLogger(cfg, &buf)
		require.NoError(t, err)
		logger.Info("dropped")
		logger.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "msg=kept")
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.Default()
		cfg.Log.Level = "loud"
		_, err := NewLogger(cfg, &bytes.Buffer{})
		assert.ErrorIs(t, err, cmderrors.ErrConfig)
	})
}

func TestNewDummySet(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = config.FormatJSON
	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)

	set, err := NewDummySet(logger)
	require.NoError(t, err)
	assert.Equal(t, 9, set.Len())

	result, err := set.Execute(context.Background(), "ping_dummy", "corr-1", nil)
	require.NoError(t, err)
	assert.Equal(t, true, result)
	assert.Contains(t, buf.String(), `"command executed"`)
	assert.Contains(t, buf.String(), `"correlation_id":"corr-1"`)
}

func TestNewDummySetWithNopLogger(t *testing.T) {
	set, err := NewDummySet(interceptor.NopLogger{})
	require.NoError(t, err)
	_, ok := set.FindCommand("get_dummies")
	assert.True(t, ok)
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(regular, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(regular, link))

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "absent.yaml")))
	assert.NoError(t, RejectSymlinkOutput(regular))

	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "refusing to write to symlink"))
}
