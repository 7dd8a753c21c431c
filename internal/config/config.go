package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/kyaoi/mdslides/internal/input"
)

// EnvPrefix is the prefix of environment overrides, e.g. MDSLIDES_THEME.
const EnvPrefix = "MDSLIDES_"

// Config holds the presenter settings.
type Config struct {
	Theme          string `koanf:"theme" yaml:"theme" validate:"oneof=auto dark light"`
	ThemeFile      string `koanf:"theme_file" yaml:"theme_file,omitempty"`
	DarkStyle      string `koanf:"dark_style" yaml:"dark_style" validate:"required,glamour_style"`
	LightStyle     string `koanf:"light_style" yaml:"light_style" validate:"required,glamour_style"`
	SwipeThreshold int    `koanf:"swipe_threshold" yaml:"swipe_threshold" validate:"min=1,max=1000"`
	Mouse          bool   `koanf:"mouse" yaml:"mouse"`
	AltScreen      bool   `koanf:"alt_screen" yaml:"alt_screen"`
	Tag            string `koanf:"tag" yaml:"tag,omitempty"`
	LogFile        string `koanf:"log_file" yaml:"log_file,omitempty"`
	LogLevel       string `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Debug          bool   `koanf:"debug" yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:          "auto",
		DarkStyle:      "tokyo-night",
		LightStyle:     "light",
		SwipeThreshold: input.DefaultSwipeThreshold,
		Mouse:          true,
		AltScreen:      true,
		LogLevel:       "info",
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mdslides", "config.yaml")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
