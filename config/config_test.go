package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	_, err = Load("")
	require.Error(t, err)
}

func TestLoadNormalizesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out/oct.png\nfonts:\n  bold: fonts/Bold.ttf\ntrace: Loud\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out/oct.png", cfg.Output)
	require.Equal(t, "fonts/Bold.ttf", cfg.Fonts.Bold)
	require.Equal(t, "builtin:go-medium", cfg.Fonts.Medium)
	require.Equal(t, "images/logo.webp", cfg.Images.Logo)
	require.Equal(t, defaultRefresh, cfg.Refresh)
	require.Equal(t, "Info", cfg.Trace)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unterminated\n"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flyer.yaml")
	cfg := DefaultConfig()
	cfg.ICS.URL = "https://example.com/cal.ics"
	cfg.ICS.Timezone = "America/New_York"
	require.NoError(t, Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	require.Error(t, Save(path, nil))
	require.Error(t, Save("", cfg))
}

func TestLocation(t *testing.T) {
	cfg := DefaultConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)

	cfg.ICS.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	cfg.ICS.Timezone = "Nowhere/Special"
	_, err = cfg.Location()
	require.Error(t, err)
}

func TestResolvePathsUsesConfigDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "data/october.flyer"
	cfg.Debug = "/tmp/layout.json"
	cfg.Fonts.Medium = "fonts/Medium.ttf"
	cfg.ICS.URL = "https://example.com/club.ics"
	cfg.ResolvePaths(filepath.Join("conf", "flyer"))

	require.Equal(t, filepath.Join("conf", "flyer", "data", "october.flyer"), cfg.Input)
	require.Equal(t, filepath.Join("conf", "flyer", "output", "flyer.png"), cfg.Output)
	require.Equal(t, "/tmp/layout.json", cfg.Debug)
	require.Equal(t, "builtin:go-bold", cfg.Fonts.Bold)
	require.Equal(t, filepath.Join("conf", "flyer", "fonts", "Medium.ttf"), cfg.Fonts.Medium)
	require.Equal(t, filepath.Join("conf", "flyer", "images", "logo.webp"), cfg.Images.Logo)
	require.Equal(t, "https://example.com/club.ics", cfg.ICS.URL)

	local := DefaultConfig()
	local.ICS.URL = "club.ics"
	local.ResolvePaths("")
	require.Equal(t, "club.ics", local.ICS.URL)
	local.ResolvePaths("conf")
	require.Equal(t, filepath.Join("conf", "club.ics"), local.ICS.URL)
}
