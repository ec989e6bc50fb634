package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProductionWritesJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	l := initWithWriter(&buf, false, "")
	l.Debug("hidden")
	l.Info("streak extended", slog.Int("current_streak", 4))

	var record map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "streak extended", record["msg"])
	assert.EqualValues(t, 4, record["current_streak"])
}

func TestInitDevelopmentWritesText(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	l := initWithWriter(&buf, true, "")
	l.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}
