package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_OptionsPrecedence(t *testing.T) {
	t.Parallel()

	optionsFile := filepath.Join(t.TempDir(), "options.hcl")
	require.NoError(t, os.WriteFile(optionsFile, []byte(`
options {
  error_marker = "#FILE"
  log_level    = "warn"
}
`), 0644))

	t.Run("file values fill unset fields", func(t *testing.T) {
		cfg := &Config{InputPath: "in.csv", OptionsPath: optionsFile}
		a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "#FILE", a.Marker())
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("explicit flags win over the file", func(t *testing.T) {
		cfg := &Config{
			InputPath:   "in.csv",
			OptionsPath: optionsFile,
			ErrorMarker: "#FLAG",
			LogLevel:    "debug",
		}
		a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "#FLAG", a.Marker())
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("defaults apply without an options file", func(t *testing.T) {
		cfg := &Config{InputPath: "in.csv"}
		a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "#ERR", a.Marker())
	})
}

func TestNewApp_BadOptionsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("options {"), 0644))

	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{InputPath: "in.csv", OptionsPath: path})
	require.Error(t, err)
	assert.ErrorContains(t, err, "options file")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{InputPath: "grid.csv"})
	require.NoError(t, err)
	assert.Equal(t, "grid.csv", cfg.InputPath)
}
