package commands_test

import (
	"testing"

	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/ruminaider/chip-select/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)

	require.NoError(t, commands.ConfigInit(cfgPath, false))
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigInit_Exists(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)
	cfg := config.Default()
	cfg.Theme = "latte"
	writeConfig(t, cfgPath, cfg)

	err := commands.ConfigInit(cfgPath, false)
	assert.ErrorIs(t, err, commands.ErrConfigExists)

	got, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "latte", got.Theme, "existing config untouched")

	require.NoError(t, commands.ConfigInit(cfgPath, true))
	got, err = config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "mocha", got.Theme)
}

func TestConfigShow(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)

	out, err := commands.ConfigShow(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "placeholder: Type to search...")
	assert.Contains(t, out, "- backspace")
}
