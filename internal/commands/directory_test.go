package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/ruminaider/chip-select/internal/config"
	"github.com/ruminaider/chip-select/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv returns a config path and a default directory path inside a
// fresh temp dir. Neither file exists yet.
func setupTestEnv(t *testing.T) (cfgPath, dirPath string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), ".chip-select")
	return filepath.Join(root, "config.yaml"), filepath.Join(root, "directory.yaml")
}

// writeConfig saves cfg at cfgPath.
func writeConfig(t *testing.T, cfgPath string, cfg config.Config) {
	t.Helper()
	require.NoError(t, config.Save(cfg, cfgPath))
}

func TestLoadDirectory_Sample(t *testing.T) {
	dir, err := commands.LoadDirectory(config.Default())
	require.NoError(t, err)
	assert.Equal(t, directory.Sample().Entries(), dir.Entries())
}

func TestLoadDirectory_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[[entries]]
id = 1
name = "Ada"
label = "ada@example.com"
`), 0644))

	cfg := config.Default()
	cfg.Directory = path
	dir, err := commands.LoadDirectory(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, dir.Len())
	assert.Equal(t, "Ada", dir.Entries()[0].Name)
}

func TestDirectoryList(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)

	result, err := commands.DirectoryList(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "built-in sample", result.Source)
	assert.Len(t, result.Entries, 5)
}

func TestDirectoryList_RelativeToConfig(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("directory: people.toml\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(cfgPath), "people.toml"), []byte(`[[entries]]
id = 1
name = "Ada"
`), 0644))

	// Run from somewhere else so a cwd-relative lookup would miss the file.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	result, err := commands.DirectoryList(cfgPath)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Ada", result.Entries[0].Name)
	assert.Equal(t, filepath.Join(filepath.Dir(cfgPath), "people.toml"), result.Source)
}

func TestDirectoryList_MissingFile(t *testing.T) {
	cfgPath, dirPath := setupTestEnv(t)
	cfg := config.Default()
	cfg.Directory = dirPath
	writeConfig(t, cfgPath, cfg)

	_, err := commands.DirectoryList(cfgPath)
	assert.ErrorContains(t, err, "reading directory")
}

func TestDirectoryAdd_SeedsDefaultFile(t *testing.T) {
	cfgPath, dirPath := setupTestEnv(t)

	result, err := commands.DirectoryAdd(cfgPath, dirPath, " Eve ", "eve@example.com")
	require.NoError(t, err)
	assert.Equal(t, dirPath, result.Path)
	assert.True(t, result.ConfigUpdated)
	assert.Equal(t, directory.Entry{ID: 6, Name: "Eve", Label: "eve@example.com"}, result.Entry)

	dir, err := directory.Load(dirPath)
	require.NoError(t, err)
	assert.Equal(t, 6, dir.Len(), "sample entries plus the new one")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, dirPath, cfg.Directory)
}

func TestDirectoryAdd_ExistingFile(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)
	dirPath := filepath.Join(t.TempDir(), "team.yaml")
	seed, err := directory.New([]directory.Entry{{ID: 41, Name: "Lin", Label: "lin@example.com"}})
	require.NoError(t, err)
	require.NoError(t, directory.Save(seed, dirPath))

	cfg := config.Default()
	cfg.Directory = dirPath
	writeConfig(t, cfgPath, cfg)

	result, err := commands.DirectoryAdd(cfgPath, "/unused", "Max", "")
	require.NoError(t, err)
	assert.False(t, result.ConfigUpdated)
	assert.Equal(t, 42, result.Entry.ID)

	dir, err := directory.Load(dirPath)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())
	_, ok := dir.Lookup("Max")
	assert.True(t, ok)
}

func TestDirectoryAdd_Duplicate(t *testing.T) {
	cfgPath, dirPath := setupTestEnv(t)

	_, err := commands.DirectoryAdd(cfgPath, dirPath, "John", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, statErr := os.Stat(dirPath)
	assert.True(t, os.IsNotExist(statErr), "nothing written on failure")
}

func TestDirectoryAdd_EmptyName(t *testing.T) {
	cfgPath, dirPath := setupTestEnv(t)
	_, err := commands.DirectoryAdd(cfgPath, dirPath, "   ", "x")
	assert.ErrorContains(t, err, "name is required")
}

func TestDirectoryAdd_ConfiguredFileMissing(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)
	cfg := config.Default()
	cfg.Directory = filepath.Join(t.TempDir(), "gone.yaml")
	writeConfig(t, cfgPath, cfg)

	_, err := commands.DirectoryAdd(cfgPath, "/unused", "Max", "")
	assert.ErrorContains(t, err, "reading directory")
}
