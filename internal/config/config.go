// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ValidationRelaxed = "relaxed"
	ValidationStrict  = "strict"

	EnvOutputDir      = "PAGESPLIT_OUTPUT_DIR"
	EnvValidationMode = "PAGESPLIT_VALIDATION_MODE"
	EnvVerbose        = "PAGESPLIT_VERBOSE"
)

type Config struct {
	OutputDir      string `yaml:"output_dir"`
	ValidationMode string `yaml:"validation_mode"`
	Log            struct {
		Verbose bool   `yaml:"verbose"`
		Trace   bool   `yaml:"trace"`
		File    string `yaml:"file"`
	} `yaml:"log"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overlays PAGESPLIT_* variables. When envFile is set it is loaded
// first; variables already present in the environment win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(EnvValidationMode); ok && v != "" {
		c.ValidationMode = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		c.Log.Verbose = verbose
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.ValidationMode {
	case ValidationRelaxed, ValidationStrict:
		return nil
	default:
		return fmt.Errorf("unknown validation_mode %q (want %q or %q)",
			c.ValidationMode, ValidationRelaxed, ValidationStrict)
	}
}

func (c *Config) applyDefaults() {
	if c.ValidationMode == "" {
		c.ValidationMode = ValidationRelaxed
	}
	c.ValidationMode = strings.ToLower(c.ValidationMode)
}
