// Package config provides configuration management for the rclint CLI.
//
// Values are layered with koanf: built-in defaults, then rclint.yaml, then
// RCLINT_* environment variables, then explicitly set command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
)

// Default values for configuration.
const (
	DefaultLanguage  = "en"
	DefaultOutput    = "auto"
	DefaultEnvPrefix = "RCLINT_"
)

// RuleOptions holds the options of a single rule as read from the config file.
type RuleOptions map[string]any

// LintConfig holds rule selection and tuning.
type LintConfig struct {
	Disabled []string               `koanf:"disabled"`
	Severity map[string]string      `koanf:"severity"`
	Rules    map[string]RuleOptions `koanf:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	Language  string      `koanf:"language"`
	Verbosity int         `koanf:"verbosity"`
	Mode      lint.Mode   `koanf:"mode"`
	KeepGoing bool        `koanf:"keep_going"`
	DataDir   string      `koanf:"data_dir"`
	Output    string      `koanf:"output"`
	Lint      *LintConfig `koanf:"lint"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Language: DefaultLanguage,
		Mode:     lint.ModePorts,
		Output:   DefaultOutput,
		Lint:     &LintConfig{},
	}
}

// BuildLintConfig converts the file-level lint settings into the analyzer's
// configuration. Rule IDs are matched case-insensitively.
func (c *Config) BuildLintConfig() (*lint.Config, error) {
	mode := c.Mode
	if mode == "" {
		mode = lint.ModePorts
	}
	lc := lint.NewConfig().WithMode(mode)
	if c.Lint == nil {
		return lc, nil
	}

	for _, id := range c.Lint.Disabled {
		if id = strings.ToUpper(strings.TrimSpace(id)); id != "" {
			lc.Disable(id)
		}
	}

	for id, name := range c.Lint.Severity {
		sev, ok := lint.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("lint.severity.%s: unknown severity %q", id, name)
		}
		lc.SetSeverity(strings.ToUpper(id), sev)
	}

	for id, opts := range c.Lint.Rules {
		lc.SetRuleOptions(strings.ToUpper(id), map[string]any(opts))
	}

	return lc, nil
}
