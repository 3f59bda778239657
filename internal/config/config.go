package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when --config is not given
const DefaultFile = ".hphpa.yml"

// Config holds the run settings that may be kept in a project file
type Config struct {
	Ruleset     string `yaml:"ruleset,omitempty"`
	Checkstyle  string `yaml:"checkstyle,omitempty"`
	OutputJSON  string `yaml:"output_json,omitempty"`
	Quiet       bool   `yaml:"quiet,omitempty"`
	NoColor     bool   `yaml:"no_color,omitempty"`
	Diagnostics bool   `yaml:"diagnostics,omitempty"`
}

// Load reads the configuration at path. A missing file is only an error
// when required is set; otherwise an empty configuration is returned.
func Load(fs afero.Fs, path string, required bool) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return &cfg, nil
}
