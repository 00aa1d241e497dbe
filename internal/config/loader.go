package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Source tells where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const (
	configFileName = "platformer.yaml"
	localConfigDir = "configs"
)

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hardcoded default.
//
// A failing customPath is an error. Broken user or local files are logged
// and skipped. A nil logger uses log.Default().
func Load(customPath string, logger *log.Logger) (PlatformerConfig, Source, error) {
	if logger == nil {
		logger = log.Default()
	}

	// Try custom path first
	if customPath != "" {
		cfg, err := ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, "", err
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath(configFileName), SourceUser},
		{filepath.Join(localConfigDir, configFileName), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		if _, err := os.Stat(c.path); err != nil {
			continue
		}
		cfg, err := ReadFile(c.path)
		if err != nil {
			logger.Warn("skipping config file", "path", c.path, "error", err)
			continue
		}
		return cfg, c.source, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlatformerYAML)
	if err != nil {
		logger.Error("embedded config is broken, using builtin defaults", "error", err)
		return DefaultPlatformerConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// ReadFile reads, parses and validates a config file.
func ReadFile(path string) (PlatformerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return PlatformerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the builtin defaults and validates the result,
// so a file only needs the keys it changes.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
