package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Detection DetectionConfig `json:"detection"`
	Output    OutputConfig    `json:"output"`
}

// DetectionConfig holds the glob patterns used to locate lock files in the
// repository tree, per ecosystem.
type DetectionConfig struct {
	Cargo    []string `json:"cargo"`
	Composer []string `json:"composer"`
	Npm      []string `json:"npm"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	Format string `json:"format"` // console, json, csv
	Color  bool   `json:"color"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Detection: DetectionConfig{
			Cargo:    []string{"**/Cargo.lock"},
			Composer: []string{"**/composer.lock"},
			Npm:      []string{"**/package-lock.json", "**/npm-shrinkwrap.json"},
		},
		Output: OutputConfig{
			Format: "console",
			Color:  true,
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".lockline.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".lockline.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
