// Package config loads the editor's settings from one YAML file, named by
// the --config flag or the BL3_SAVIOR_CONFIG environment variable. There is
// no discovery: with neither set, built-in defaults apply.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Log    LogConfig    `yaml:"log"`
		Edit   EditConfig   `yaml:"edit"`
		Browse BrowseConfig `yaml:"browse"`
	}
	LogConfig struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level"`
		// Format is text or json.
		Format string `yaml:"format"`
	}
	EditConfig struct {
		// Output is the format edit writes when --output is not given.
		Output string `yaml:"output"`
		Quiet  bool   `yaml:"quiet"`
		// Vehicles lists, per vehicle name, the assets the vehicles and
		// vehicleskins unlocks add.
		Vehicles map[string]VehicleConfig `yaml:"vehicles"`
	}
	VehicleConfig struct {
		Chassis []string `yaml:"chassis"`
		Parts   []string `yaml:"parts"`
		Skins   []string `yaml:"skins"`
	}
	BrowseConfig struct {
		// Extensions lists the file suffixes the browser shows.
		Extensions []string `yaml:"extensions"`
	}
)

const (
	EnvVar = "BL3_SAVIOR_CONFIG"
)

var (
	OutputFormats = []string{"savegame", "protobuf", "json", "items", "items-ini", "snapshot"}
	logLevels     = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Edit: EditConfig{
			Output: "savegame",
		},
		Browse: BrowseConfig{
			Extensions: []string{".sav"},
		},
	}
}

// Load reads path, or the file named by BL3_SAVIOR_CONFIG when path is
// empty. With neither, it returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads one file over the defaults. Keys the file leaves out keep
// their default values; unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config.LoadFile error")
	}
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(bs))
	decoder.KnownFields(true)
	// io.EOF means an empty file, which leaves the defaults in place
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "config.LoadFile error parsing %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config.LoadFile error in %q", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	if !lo.Contains(OutputFormats, c.Edit.Output) {
		return errors.Errorf("edit.output %q is not one of %s", c.Edit.Output, strings.Join(OutputFormats, ", "))
	}
	for name, vehicle := range c.Edit.Vehicles {
		paths := append(append(append([]string{}, vehicle.Chassis...), vehicle.Parts...), vehicle.Skins...)
		if path, found := lo.Find(paths, func(path string) bool {
			return !strings.HasPrefix(path, "/")
		}); found {
			return errors.Errorf("edit.vehicles.%s entry %q is not an asset path", name, path)
		}
	}
	for _, extension := range c.Browse.Extensions {
		if !strings.HasPrefix(extension, ".") {
			return errors.Errorf("browse.extensions entry %q must start with a dot", extension)
		}
	}
	return nil
}

// SlogLevel assumes Validate has passed.
func (l LogConfig) SlogLevel() slog.Level {
	return logLevels[strings.ToLower(l.Level)]
}
