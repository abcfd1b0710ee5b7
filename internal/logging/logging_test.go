package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/internal/logging"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "text", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("search done", slog.String("session", "abc"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"search done\"")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "JSON", "debug")
	require.NoError(t, err)

	logger.Debug("expanded", slog.Int("cells", 3))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "expanded", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 3, rec["cells"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "xml", "info")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.LevelFromString("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.LevelFromString("warning"))
	assert.Equal(t, slog.LevelError, logging.LevelFromString("error"))
	assert.Equal(t, slog.LevelInfo, logging.LevelFromString("bogus"))
	assert.Greater(t, logging.LevelFromString("off"), slog.LevelError)
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
