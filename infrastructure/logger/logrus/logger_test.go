package logrus

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	l, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.DebugLevel)

	l.Info("Fetch completed", map[string]interface{}{
		"mode":  "trending",
		"items": 20,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fetch completed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "trending", entry["mode"])
	assert.Equal(t, float64(20), entry["items"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.WarnLevel)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	l.Error("shown too", map[string]interface{}{"code": 500})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.log")
	cfg := DefaultConfig()
	cfg.File = path
	cfg.Format = "json"

	l, err := New(cfg)
	require.NoError(t, err)

	l.Warn("Fetch failed", map[string]interface{}{"error": "timeout"})
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Fetch failed"`)
	assert.Contains(t, string(data), `"error":"timeout"`)
}
