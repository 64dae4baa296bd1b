package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads the Dash configuration.
// Search order: customPath -> ~/.arcade/configs/dash.yaml -> ./configs/dash.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// Returns the path the config came from ("embedded" for the built-in file).
func LoadDash(customPath string) (DashConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readDash(customPath)
		if err != nil {
			return DefaultDashConfig(), "", err
		}
		return cfg, customPath, nil
	}

	// User config directory, then local configs directory
	for _, path := range []string{userConfigPath("dash.yaml"), filepath.Join("configs", "dash.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := readDash(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(defaultDashYAML, &cfg); err != nil {
		return DefaultDashConfig(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// readDash parses and validates one config file over the defaults.
func readDash(path string) (DashConfig, error) {
	cfg := DefaultDashConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
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

// ApplyDashPreset modifies the config based on a difficulty preset.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Physics.ScrollSpeed *= SpeedScaleForPreset(preset)
}
