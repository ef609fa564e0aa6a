package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "bl3-savior.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "savegame", cfg.Edit.Output)
	assert.Equal(t, []string{".sav"}, cfg.Browse.Extensions)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoad_NoPathNoEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv(EnvVar, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	// keys left out keep their defaults
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "savegame", cfg.Edit.Output)
}

func TestLoad_PathWinsOverEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "edit:\n  output: json\n"))
	cfg, err := Load(writeConfig(t, "edit:\n  output: items\n  quiet: true\nbrowse:\n  extensions: [.sav, .cbor]\n"))
	require.NoError(t, err)
	assert.Equal(t, "items", cfg.Edit.Output)
	assert.True(t, cfg.Edit.Quiet)
	assert.Equal(t, []string{".sav", ".cbor"}, cfg.Browse.Extensions)
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "logging:\n  level: debug\n",
		"bad level":     "log:\n  level: loud\n",
		"bad format":    "log:\n  format: xml\n",
		"bad output":    "edit:\n  output: pdf\n",
		"bad extension": "browse:\n  extensions: [sav]\n",
		"not yaml":      "log: [\n",
		"bad vehicle":   "edit:\n  vehicles:\n    outrunner:\n      parts: [Wheel]\n",
		"vehicle key":   "edit:\n  vehicles:\n    outrunner:\n      wheels: [/Game/A]\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Vehicles(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `edit:
  vehicles:
    outrunner:
      chassis: [/Game/Vehicles/Outrunner/Chassis]
      skins: [/Game/Vehicles/Outrunner/Skins/Red, /Game/Vehicles/Outrunner/Skins/Blue]
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]VehicleConfig{
		"outrunner": {
			Chassis: []string{"/Game/Vehicles/Outrunner/Chassis"},
			Skins:   []string{"/Game/Vehicles/Outrunner/Skins/Red", "/Game/Vehicles/Outrunner/Skins/Blue"},
		},
	}, cfg.Edit.Vehicles)
	assert.Equal(t, "savegame", cfg.Edit.Output)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
