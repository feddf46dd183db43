package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML defaults file read by the CLI.
type FileConfig struct {
	Generator GeneratorConfig `toml:"generator"`
}

// GeneratorConfig maps generation defaults. Unset keys stay nil so flags
// and built-in defaults can tell them apart from explicit values.
type GeneratorConfig struct {
	Length    *int  `toml:"length"`
	Uppercase *bool `toml:"uppercase"`
	Lowercase *bool `toml:"lowercase"`
	Numbers   *bool `toml:"numbers"`
	Symbols   *bool `toml:"symbols"`
	Count     *int  `toml:"count"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DefaultFilePath returns $XDG_CONFIG_HOME/passgen/config.toml.
func DefaultFilePath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			base = "."
		} else {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "passgen", "config.toml")
}

// Template is a commented starting point for the defaults file.
const Template = `# passgen configuration
# Uncomment a value to enable it. CLI flags override config values.

[generator]
# length = 12
# uppercase = true
# lowercase = true
# numbers = true
# symbols = true
# count = 1
`
