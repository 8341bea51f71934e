package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults. The first file found in
// the search path is used, and its parse or validation error is returned.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, "flappy.yaml"),
			filepath.Join(dir, "flappy.toml"),
		)
	}
	candidates = append(candidates,
		filepath.Join("configs", "flappy.yaml"),
		filepath.Join("configs", "flappy.toml"),
	)

	// Missing files are skipped; a file that exists but is broken is an error.
	for _, path := range candidates {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return LoadFile(path)
	}

	// Use embedded default YAML
	cfg := Default()
	if err := Decode(defaultYAML, FormatYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, decodes and validates a single configuration file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(data, FormatFor(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes data in the given format on top of cfg.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "", PresetNormal:
		return nil
	case PresetEasy:
		cfg.Obstacles.MinGap += 40
		cfg.Obstacles.MaxGap += 40
		cfg.Physics.ScrollSpeed *= 0.85
		cfg.Obstacles.MinInterval *= 1.1
		cfg.Obstacles.MaxInterval *= 1.1
	case PresetHard:
		cfg.Obstacles.MinGap -= 30
		cfg.Obstacles.MaxGap -= 30
		cfg.Physics.ScrollSpeed *= 1.2
		cfg.Obstacles.MinInterval *= 0.85
		cfg.Obstacles.MaxInterval *= 0.85
	default:
		return fmt.Errorf("config: unknown difficulty preset %q (want easy, normal or hard)", preset)
	}
	return cfg.Validate()
}
