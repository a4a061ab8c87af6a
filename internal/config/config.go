// Package config resolves where build-labels reads its sources and writes its
// output. Values come from defaults overridden by LABELS_* environment
// variables; nothing is derived from process state after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/labelset/internal/labels"
)

// EnvPrefix prefixes every environment override, e.g. LABELS_OUTPUT.
const EnvPrefix = "LABELS"

// Default locations, relative to Root.
const (
	DefaultCoreSource     = "src/labels/core.json"
	DefaultOptionalSource = "src/labels/scopes-optional.json"
	DefaultOutput         = ".github/labels.json"
)

// Config is the explicit run configuration.
type Config struct {
	// Root is the directory (or storage URL such as mem://localhost/repo)
	// relative paths are resolved against. Defaults to the working directory.
	Root           string `mapstructure:"root"`
	CoreSource     string `mapstructure:"core_source"`
	OptionalSource string `mapstructure:"optional_source"`
	Output         string `mapstructure:"output"`
}

// DefaultConfig returns the configuration used when nothing is overridden,
// rooted at root.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:           root,
		CoreSource:     DefaultCoreSource,
		OptionalSource: DefaultOptionalSource,
		Output:         DefaultOutput,
	}
}

// Load builds a Config from defaults and LABELS_* environment variables.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig(wd)
	v.SetDefault("root", defaults.Root)
	v.SetDefault("core_source", defaults.CoreSource)
	v.SetDefault("optional_source", defaults.OptionalSource)
	v.SetDefault("output", defaults.Output)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Paths resolves the configured locations against Root.
func (c *Config) Paths() labels.Paths {
	return labels.Paths{
		Core:     c.Resolve(c.CoreSource),
		Optional: c.Resolve(c.OptionalSource),
		Output:   c.Resolve(c.Output),
	}
}

// Resolve joins p onto Root unless p is already absolute or a URL.
func (c *Config) Resolve(p string) string {
	if isURL(p) || filepath.IsAbs(p) {
		return p
	}
	if isURL(c.Root) {
		return strings.TrimRight(c.Root, "/") + "/" + strings.TrimLeft(filepath.ToSlash(p), "/")
	}
	return filepath.Join(c.Root, p)
}

func isURL(p string) bool {
	return strings.Contains(p, "://")
}
