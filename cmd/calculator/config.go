package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// config holds the settings of a run. Values come from defaults, then the
// config file, then flags.
type config struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log-level"`
	Echo     bool   `yaml:"echo"`
}

func defaultConfig() config {
	return config{Format: "%g", LogLevel: "warn"}
}

// loadConfig reads a YAML config file over cfg. Keys missing from the file
// keep their values in cfg.
func loadConfig(path string, cfg config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if strings.TrimSpace(c.Format) == "" {
		return fmt.Errorf("format must not be empty")
	}
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	return nil
}
