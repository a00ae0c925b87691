package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/chip-select/internal/config"
	"github.com/ruminaider/chip-select/internal/directory"
)

// LoadDirectory returns the directory named by cfg, or the built-in sample
// when cfg names none.
func LoadDirectory(cfg config.Config) (directory.Directory, error) {
	if cfg.Directory == "" {
		return directory.Sample(), nil
	}
	return directory.Load(cfg.Directory)
}

// DirectoryListResult describes where the listed entries came from.
type DirectoryListResult struct {
	Source  string // file path, or "built-in sample"
	Entries []directory.Entry
}

// DirectoryList loads the config at cfgPath and returns its directory entries.
func DirectoryList(cfgPath string) (*DirectoryListResult, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	dir, err := LoadDirectory(cfg)
	if err != nil {
		return nil, err
	}
	source := cfg.Directory
	if source == "" {
		source = "built-in sample"
	}
	return &DirectoryListResult{Source: source, Entries: dir.Entries()}, nil
}

// DirectoryAddResult reports the entry written and where.
type DirectoryAddResult struct {
	Entry         directory.Entry
	Path          string
	ConfigUpdated bool // config now points at Path
}

// DirectoryAdd appends an entry to the configured directory file. When no
// directory is configured, defaultDirPath is used: it is seeded with the
// sample entries if missing, and the config at cfgPath is updated to point
// at it.
func DirectoryAdd(cfgPath, defaultDirPath, name, label string) (*DirectoryAddResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	path := cfg.Directory
	configUpdated := false
	if path == "" {
		path = defaultDirPath
		cfg.Directory = path
		configUpdated = true
	}

	dir, err := directory.Load(path)
	if errors.Is(err, os.ErrNotExist) && configUpdated {
		dir = directory.Sample()
	} else if err != nil {
		return nil, err
	}

	e := directory.Entry{ID: dir.NextID(), Name: name, Label: strings.TrimSpace(label)}
	next, err := dir.With(e)
	if err != nil {
		return nil, fmt.Errorf("adding %q: %w", name, err)
	}
	if err := directory.Save(next, path); err != nil {
		return nil, err
	}

	if configUpdated {
		if err := config.Save(cfg, cfgPath); err != nil {
			return nil, err
		}
	}

	return &DirectoryAddResult{Entry: e, Path: path, ConfigUpdated: configUpdated}, nil
}
