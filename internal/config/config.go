package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	catppuccin "github.com/catppuccin/go"
	"go.yaml.in/yaml/v3"
)

// Config represents ~/.chip-select/config.yaml.
type Config struct {
	// Directory is the path of the directory file. Empty selects the built-in
	// sample directory.
	Directory      string   `yaml:"directory,omitempty"`
	Placeholder    string   `yaml:"placeholder"`
	DeletionKeys   []string `yaml:"deletion_keys"`
	MaxSuggestions int      `yaml:"max_suggestions"`
	Theme          string   `yaml:"theme"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Placeholder:    "Type to search...",
		DeletionKeys:   []string{"backspace"},
		MaxSuggestions: 8,
		Theme:          "mocha",
	}
}

// Parse parses config.yaml bytes. Fields missing from the file keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports settings the picker cannot run with.
func (c Config) Validate() error {
	if len(c.DeletionKeys) == 0 {
		return fmt.Errorf("invalid config: deletion_keys must not be empty")
	}
	if c.MaxSuggestions < 1 {
		return fmt.Errorf("invalid config: max_suggestions must be at least 1, got %d", c.MaxSuggestions)
	}
	if _, err := Flavor(c.Theme); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the config at path. A missing file yields Default. A relative
// directory path is taken relative to the config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if cfg.Directory != "" && !filepath.IsAbs(cfg.Directory) {
		cfg.Directory = filepath.Join(filepath.Dir(path), cfg.Directory)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(cfg Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Flavor maps a theme name to a catppuccin flavor.
func Flavor(name string) (catppuccin.Flavor, error) {
	switch name {
	case "", "mocha":
		return catppuccin.Mocha, nil
	case "macchiato":
		return catppuccin.Macchiato, nil
	case "frappe":
		return catppuccin.Frappe, nil
	case "latte":
		return catppuccin.Latte, nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want latte, frappe, macchiato or mocha)", name)
	}
}
