// Package config provides configuration loading for the vegaframe CLI:
// plot defaults and logging settings from a YAML file, with ${VAR}
// environment substitution.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vegaframe/vegaframe/pkg/errors"
)

// Config is the CLI configuration.
type Config struct {
	// LogLevel sets the logger verbosity
	LogLevel string `yaml:"log_level"`

	// Plot holds default plot options applied when a flag is not given
	Plot PlotDefaults `yaml:"plot"`
}

// PlotDefaults are fallback plot options.
type PlotDefaults struct {
	Kind        string   `yaml:"kind"`
	Alpha       *float64 `yaml:"alpha"`
	Color       string   `yaml:"color"`
	Bins        *int     `yaml:"bins"`
	Orientation string   `yaml:"orientation"`
	Colormap    string   `yaml:"colormap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Plot: PlotDefaults{
			Kind: "line",
		},
	}
}

// Load reads a YAML configuration file over cfg, substituting ${VAR}
// references from the environment first.
func Load(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML")
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
