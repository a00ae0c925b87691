package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/ruminaider/chip-select/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestAppDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.AppDir(), home))
	assert.True(t, strings.HasSuffix(paths.AppDir(), ".chip-select"))
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasPrefix(paths.ConfigFile(), paths.AppDir()))
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestDirectoryFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.DirectoryFile(), "directory.yaml"))
}

func TestDebugLogFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.DebugLogFile(), "debug.log"))
}
