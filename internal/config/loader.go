package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load loads the tuning.
// Search order: customPath -> ~/.homeward/config.yaml -> ./configs/homeward.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func Load(customPath string) (Tuning, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	if p := UserConfigPath(); p != "" {
		if cfg, err := LoadFile(p); err == nil {
			return cfg, p, nil
		}
	}

	local := filepath.Join("configs", "homeward.yaml")
	if cfg, err := LoadFile(local); err == nil {
		return cfg, local, nil
	}

	cfg, err := Parse(defaultTuningYAML)
	if err != nil {
		return DefaultTuning(), "", nil
	}
	return cfg, "", nil
}

// LoadFile reads and validates a single tuning file.
func LoadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultTuning and validates the result.
func Parse(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTuning(), fmt.Errorf("parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return cfg, nil
}

// UserConfigPath returns ~/.homeward/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".homeward", fileName)
}
