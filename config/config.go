// Package config resolves the pack configuration from defaults, an optional
// YAML file and environment variables, in that order. Every default is safe
// for local use so the pack works with zero configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by Load and FromEnv.
const (
	EnvAPIURL    = "PIXL_API_URL"
	EnvTextDir   = "PIXL_TEXT_DIR"
	EnvOutputDir = "PIXL_OUTPUT_DIR"
	EnvStateDir  = "PIXL_STATE_DIR"
	EnvLogLevel  = "PIXL_LOG_LEVEL"
	EnvLogFormat = "PIXL_LOG_FORMAT"
)

// DefaultAPIURL is the production platform endpoint.
const DefaultAPIURL = "https://api.pixl.sh"

// maxConfigFileSize bounds YAML config reads (1MB).
const maxConfigFileSize = 1024 * 1024

// Config holds the resolved pack settings.
type Config struct {
	// APIURL is the platform base URL used by upload nodes.
	APIURL string `yaml:"api_url"`
	// TextDir is the text-file catalog directory.
	TextDir string `yaml:"text_dir"`
	// OutputDir receives saved images.
	OutputDir string `yaml:"output_dir"`
	// StateDir holds cross-invocation node state files.
	StateDir string `yaml:"state_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "json" or "text".
	LogFormat string `yaml:"log_format"`
}

// Default returns a Config with all fields set to their local-use defaults.
func Default() *Config {
	return &Config{
		APIURL:    DefaultAPIURL,
		TextDir:   "text_files",
		OutputDir: "output",
		StateDir:  "state",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load resolves configuration from defaults, then the YAML file at path (if
// path is non-empty), then environment variables. A missing file at an
// explicitly given path is an error; parse failures are errors.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.FromEnv()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if info.Size() > maxConfigFileSize {
		return fmt.Errorf("config %s exceeds %d bytes", path, maxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// FromEnv overrides any field whose environment variable is set and non-empty.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvTextDir); v != "" {
		c.TextDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

// EnsureDirs creates the text, output and state directories if absent.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.TextDir, c.OutputDir, c.StateDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// StatePath joins the state directory with name. The name must be a bare
// file name; path separators are rejected to keep writes inside StateDir.
func (c *Config) StatePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid state file name %q", name)
	}
	return filepath.Join(c.StateDir, name), nil
}
