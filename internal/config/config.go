package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var OutputFormats = []string{"cli", "json", "tui"}

type Config struct {
	// Case file to investigate, empty for the built-in mansion
	CaseFile string `yaml:"case_file"`

	Output string `yaml:"output"` // cli, json or tui

	// Debug configuration
	Verbose bool `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: "cli",
	}
}

// DefaultPath is where the config lives when --config is not given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dquest", "config.yaml")
}

// Load reads the config at path. The file must exist; an empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	return load(path, true)
}

// LoadDefault reads the config at DefaultPath. A missing file yields the
// defaults.
func LoadDefault() (*Config, error) {
	return load(DefaultPath(), false)
}

func load(path string, mustExist bool) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !mustExist:
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DQUEST_CASE_FILE"); v != "" {
		c.CaseFile = v
	}
	if v := os.Getenv("DQUEST_OUTPUT"); v != "" {
		c.Output = v
	}
}

func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("invalid output format: %s. Valid options: %v", c.Output, OutputFormats)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) String() string {
	if c.CaseFile != "" {
		return fmt.Sprintf("case %s (%s output)", c.CaseFile, c.Output)
	}
	return fmt.Sprintf("built-in mansion (%s output)", c.Output)
}
