package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/chip-select/internal/config"
)

// ErrConfigExists is returned by ConfigInit when a config file is already
// present and force is false.
var ErrConfigExists = errors.New("config file already exists")

// ConfigInit writes the default config to cfgPath.
func ConfigInit(cfgPath string, force bool) error {
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, cfgPath)
	}
	return config.Save(config.Default(), cfgPath)
}

// ConfigShow returns the effective config at cfgPath as YAML.
func ConfigShow(cfgPath string) (string, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(data), nil
}
