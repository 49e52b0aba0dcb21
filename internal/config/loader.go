package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the embedded default, so a file only needs the keys it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := overlay(&cfg, data); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := overlay(&candidate, data); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// overlay decodes YAML on top of an existing config.
// Scalars and struct fields merge; lists such as topics and phases are replaced,
// and variants are merged by name.
func overlay(cfg *RunnerConfig, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded default.
func embeddedDefault() RunnerConfig {
	cfg := DefaultRunnerConfig()
	var parsed RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &parsed); err != nil {
		return cfg
	}
	if parsed.Validate() != nil {
		return cfg
	}
	return parsed
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
