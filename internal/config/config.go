package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned for an unsupported output format
var ErrInvalidFormat = errors.New("format must be one of: text, json, yaml")

// ErrInvalidLogLevel is returned for an unsupported log level
var ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")

// Config holds all configuration for censor
type Config struct {
	Format     string `yaml:"format" env:"CENSOR_FORMAT"`
	CI         bool   `yaml:"ci" env:"CENSOR_CI"`
	LogLevel   string `yaml:"log_level" env:"CENSOR_LOG_LEVEL"`
	ReportFile string `yaml:"report_file"`

	// Path the config was read from; empty when no file was found
	Source string `yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// Load builds the configuration from defaults, the config file and the environment.
// environ uses the os.Environ format ("KEY=VALUE"). A non-empty path
// overrides CENSOR_CONFIG and the standard locations.
func Load(path string, environ []string) (*Config, error) {
	cfg := DefaultConfig()
	vars := parseEnviron(environ)

	explicit := path != ""
	if !explicit {
		path = configPath(vars)
	}
	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
			cfg.Source = path
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg, vars); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	normalize(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// configPath returns the config file path
func configPath(vars map[string]string) string {
	if path := vars["CENSOR_CONFIG"]; path != "" {
		return path
	}

	if xdg := vars["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "censor", "config.yaml")
	}

	if home := vars["HOME"]; home != "" {
		return filepath.Join(home, ".config", "censor", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - path comes from a flag, CENSOR_CONFIG or a standard location
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// ciEnv reads the generic CI flag set by most CI providers
type ciEnv struct {
	CI bool `env:"CI"`
}

// loadFromEnv applies environment overrides.
// CENSOR_CI is applied after CI so it wins; empty values are ignored.
func loadFromEnv(cfg *Config, vars map[string]string) error {
	opts := env.Options{Environment: vars}

	generic := ciEnv{CI: cfg.CI}
	if err := env.ParseWithOptions(&generic, opts); err != nil {
		return fmt.Errorf("invalid CI: %w", err)
	}
	cfg.CI = generic.CI

	return env.ParseWithOptions(cfg, opts)
}

// normalize folds case-insensitive settings from any source
func normalize(cfg *Config) {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidFormat, cfg.Format)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

// parseEnviron converts an environ slice (["KEY=VALUE", ...]) into a map.
// Values may contain "="; entries without "=" are skipped.
func parseEnviron(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		idx := strings.Index(entry, "=")
		if idx == -1 {
			continue
		}
		result[entry[:idx]] = entry[idx+1:]
	}
	return result
}
