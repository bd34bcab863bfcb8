package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every config section.
type validator interface {
	Validate() error
}

// LoadEngine loads the engine configuration.
// Search order: customPath -> ~/.arcade/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func LoadEngine(customPath string) (EngineConfig, error) {
	return load("engine.yaml", customPath, defaultEngineYAML, DefaultEngineConfig)
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids.yaml", customPath, defaultAsteroidsYAML, DefaultAsteroidsConfig)
}

// LoadNumbers loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/numbers.yaml -> ./configs/numbers.yaml -> embedded default
func LoadNumbers(customPath string) (NumbersConfig, error) {
	return load("numbers.yaml", customPath, defaultNumbersYAML, DefaultNumbersConfig)
}

// load decodes the first config file found for name over the hardcoded
// defaults, so a file only needs the keys it changes. An explicit path
// must exist and be valid; files found in the search directories are
// skipped when they fail to parse or validate.
func load[T validator](name, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path, defaults); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad[T validator](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
