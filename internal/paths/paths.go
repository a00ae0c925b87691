package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.chip-select.
func AppDir() string {
	return filepath.Join(home(), ".chip-select")
}

// ConfigFile returns ~/.chip-select/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// DirectoryFile returns ~/.chip-select/directory.yaml, the file
// `directory add` writes to when no directory is configured.
func DirectoryFile() string {
	return filepath.Join(AppDir(), "directory.yaml")
}

// DebugLogFile returns ~/.chip-select/debug.log.
func DebugLogFile() string {
	return filepath.Join(AppDir(), "debug.log")
}
