package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tabular/pkg/errors"
	"tabular/pkg/ingest"
)

// Config is the engine's complete configuration: ingestion defaults and
// logging. Values come from TABULAR_* environment variables, optionally
// overlaid by a YAML file.
type Config struct {
	Ingest  IngestConfig  `yaml:"ingest" envconfig:"INGEST"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// IngestConfig carries the defaults handed to ingest.NewReader.
type IngestConfig struct {
	Delimiter          string `yaml:"delimiter" envconfig:"DELIMITER" default:"," validate:"required,len=1"`
	ThousandsSeparator string `yaml:"thousands_separator" envconfig:"THOUSANDS_SEPARATOR" default:"," validate:"max=1"`
	Strict             bool   `yaml:"strict" envconfig:"STRICT" default:"false"`
	TrimSpace          bool   `yaml:"trim_space" envconfig:"TRIM_SPACE" default:"true"`
}

// LoggingConfig controls the slog handler built by NewLogger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/tabular.log"`
}

// envPrefix namespaces the engine's environment variables.
const envPrefix = "TABULAR"

// configFileEnv points Load at an alternate YAML file.
const configFileEnv = "TABULAR_CONFIG_FILE"

// defaultConfigFile is read when it exists and no override is set.
const defaultConfigFile = "tabular.yaml"

// Load builds the configuration from environment variables first, then
// overlays values from the YAML config file if one exists, and validates
// the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.NewConfigError("load config from environment", err)
	}

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFromFile overlays YAML values onto the config.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigError("read config file", err).WithContext("path", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewConfigError("parse config file", err).WithContext("path", path)
	}
	return nil
}

var validate = validator.New()

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NewConfigError("config validation failed", err)
	}
	return nil
}

// Options converts the ingestion config into reader options.
func (c IngestConfig) Options() ingest.Options {
	opts := ingest.Options{
		Comma:     []rune(c.Delimiter)[0],
		Strict:    c.Strict,
		TrimSpace: c.TrimSpace,
	}
	if c.ThousandsSeparator != "" {
		opts.ThousandsSep = []rune(c.ThousandsSeparator)[0]
	}
	return opts
}
