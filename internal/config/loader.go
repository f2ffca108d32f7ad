package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "flappy.yaml"

// LoadFlappy loads the Flappy configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// Only an explicitly requested path can make loading fail.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlappy(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := ParseFlappy(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseFlappy(defaultFlappyYAML); err == nil {
		return cfg, nil
	}
	return DefaultFlappyConfig(), nil
}

// ParseFlappy decodes YAML over the default configuration and validates the result.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
