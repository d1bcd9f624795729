// Package manifest handles planwire.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
)

// Manifest represents a planwire.toml configuration.
type Manifest struct {
	Project Project     `toml:"project"`
	Cache   CacheConfig `toml:"cache"`
	Log     LogConfig   `toml:"log"`

	// Dir is the directory containing the planwire.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// CacheConfig configures the plan store.
type CacheConfig struct {
	Path       string `toml:"path"`
	MaxEntries int    `toml:"max-entries"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Load parses a planwire.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "planwire.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Cache.Path == "" {
		m.Cache.Path = filepath.Join(".planwire", "plans.db")
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a planwire.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "planwire.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// CachePath returns the absolute path of the configured plan store.
func (m *Manifest) CachePath() string {
	if filepath.IsAbs(m.Cache.Path) {
		return m.Cache.Path
	}
	return filepath.Join(m.Dir, m.Cache.Path)
}

// ConfigureLogging applies the manifest's log settings process-wide.
func (m *Manifest) ConfigureLogging() {
	var path *string
	if m.Log.File != "" {
		p := m.Log.File
		path = &p
	}
	commonlog.Configure(m.Log.Verbosity, path)
}
