package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is a recipe site whose index page can be crawled for importable
// recipe links.
type Source struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is the optional YAML application config. Runtime knobs (quiet,
// cache TTL, db path) come from CLI flags; the file only declares things
// that are awkward on a command line.
type Config struct {
	Sources  []Source `yaml:"sources"`
	DBPath   string   `yaml:"db_path,omitempty"`
	CacheDir string   `yaml:"cache_dir,omitempty"`
}

// LoadConfig reads a YAML config file. A missing file is not an error:
// the zero Config is usable.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// ImportConfig holds runtime configuration for an import run.
// All values come from CLI flags, not external config files.
type ImportConfig struct {
	URLs     []string
	CacheDir string
}
