package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andrechen77/icoraw/internal/paths"
)

// DefaultInput is the placeholder input path used when no argument is given.
const DefaultInput = "your-icon.ico"

// DefaultOutput is the raw buffer output file name.
const DefaultOutput = "output.rgba8"

// History store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds settings parsed from icoraw-config.json.
type Config struct {
	Output       string `json:"output,omitempty"`        // output file name
	History      bool   `json:"history,omitempty"`       // record conversions
	HistoryStore string `json:"history_store,omitempty"` // "file" | "sqlite"
	Preview      bool   `json:"preview,omitempty"`       // always render a terminal preview
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{Output: DefaultOutput, HistoryStore: StoreFile}
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; missing file is an error)
//  2. icoraw-config.json next to the running binary
//  3. ~/.config/icoraw/icoraw-config.json (Windows: %APPDATA%\icoraw)
//
// No config file anywhere is not an error; the defaults apply.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	// User config directory
	home, err := os.UserHomeDir()
	if err == nil {
		var p string
		if runtime.GOOS == "windows" {
			p = filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName)
		} else {
			p = filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName)
		}
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.HistoryStore != StoreFile && cfg.HistoryStore != StoreSQLite {
		return Config{}, fmt.Errorf("%s: history_store must be %q or %q, got %q",
			path, StoreFile, StoreSQLite, cfg.HistoryStore)
	}
	return cfg, nil
}
