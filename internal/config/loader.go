package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a game and validates it.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the game's defaults, so they only need the keys they change.
func Load(gameID, customPath string) (GameConfig, error) {
	base, ok := DefaultConfig(gameID)
	if !ok {
		return GameConfig{}, fmt.Errorf("config: unknown game %q", gameID)
	}

	cfg, err := resolve(gameID, customPath, base)
	if err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("config: %s: %w", gameID, err)
	}
	return cfg, nil
}

func resolve(gameID, customPath string, base GameConfig) (GameConfig, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, base); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(data, base); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(GetDefaultYAML(gameID), base)
	if err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over a copy of base.
func Parse(data []byte, base GameConfig) (GameConfig, error) {
	cfg := base
	cfg.Palette = append([]string(nil), base.Palette...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
