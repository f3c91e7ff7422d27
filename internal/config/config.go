package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: DDODECK_TIMERS__POM_INFO sets timers.pom_info.
const EnvPrefix = "DDODECK_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DDODECK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DDODECK_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLevels is the set of recognized log levels.
var validLevels = map[LogLevel]bool{
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

// validFormats is the set of recognized export formats.
var validFormats = map[string]bool{
	"svg":     true,
	"mermaid": true,
	"md":      true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.LogLevel != "" && !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.Watch && c.DataFile == "" {
		return fmt.Errorf("watch requires data_file")
	}

	if c.NarrowWidth < 0 {
		return fmt.Errorf("narrow_width must be non-negative")
	}

	if c.RevealRatio < 0 || c.RevealRatio > 1 {
		return fmt.Errorf("reveal_ratio must be within [0, 1]")
	}

	if c.Timers.PomInfo < 0 || c.Timers.PomBehavior < 0 || c.Timers.Reveal < 0 {
		return fmt.Errorf("timers must be non-negative")
	}

	for _, f := range c.Export.Formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid export format %q: must be one of svg, mermaid, md", f)
		}
	}

	return nil
}
