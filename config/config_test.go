package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/reoring/yangtypes/config"
)

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(`
timezone: Asia/Tokyo
dictionary:
  max-entries: 16
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", c.TimeZone)
	require.Equal(t, 16, c.Dictionary.MaxEntries)
	require.Equal(t, "debug", c.Log.Level)

	opts := c.Options(nil)
	require.Equal(t, "Asia/Tokyo", opts.TimeZone)
	require.Equal(t, 16, opts.MaxDictEntries)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	c, err = config.Parse([]byte("timezone: UTC\n"))
	require.NoError(t, err)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, "UTC", c.TimeZone)
}

func TestParse_Rejects(t *testing.T) {
	for name, in := range map[string]string{
		"unknown key":      "tz: UTC\n",
		"negative limit":   "dictionary:\n  max-entries: -1\n",
		"bad level":        "log:\n  level: loud\n",
		"bad format":       "log:\n  format: xml\n",
		"wrong value type": "dictionary:\n  max-entries: many\n",
	} {
		_, err := config.Parse([]byte(in))
		require.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yangtypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: UTC\n"), 0o600))
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "UTC", c.TimeZone)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger_JSON(t *testing.T) {
	c := config.Default()
	c.Log = config.Log{Level: "warn", Format: "json"}

	var buf bytes.Buffer
	l, err := c.Logger(&buf)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, l.Logger.GetLevel())

	l.Info("dropped")
	require.Zero(t, buf.Len())

	l.WithField("plugin", "p").Warn("kept")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "p", rec["plugin"])
}
