package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, '*', cfg.MarkerRune())
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
color = "off"
marker = "#"
log_level = "debug"
strict = true

[bench]
runs = 3
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Color)
	assert.Equal(t, '#', cfg.MarkerRune())
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3, cfg.Bench.Runs)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `marker = "+"`))
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 20, cfg.Bench.Runs)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"Color", `color = "rainbow"`, config.ErrBadColor},
		{"Marker", `marker = "**"`, config.ErrBadMarker},
		{"LogLevel", `log_level = "loud"`, config.ErrBadLogLevel},
		{"Runs", "[bench]\nruns = 0", config.ErrBadRuns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Load(writeFile(t, "color = "))
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NoDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
