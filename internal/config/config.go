package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
)

const (
	defaultHungerLevel  = calculator.Medium
	defaultOutputFormat = FormatText
	defaultLogLevel     = "info"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	outputFormats = []string{FormatText, FormatJSON, FormatYAML}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	DefaultHungerLevel calculator.HungerLevel `yaml:"default_hunger_level"`
	OutputFormat       string                 `yaml:"output_format"`
	LogLevel           string                 `yaml:"log_level"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	DefaultHungerLevel string `yaml:"default_hunger_level"`
	OutputFormat       string `yaml:"output_format"`
	LogLevel           string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile   string
	HungerLevel  *string
	OutputFormat *string
	LogLevel     *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the configuration used when no source overrides anything.
func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		DefaultHungerLevel: defaultHungerLevel,
		OutputFormat:       defaultOutputFormat,
		LogLevel:           defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if raw := strings.TrimSpace(yamlCfg.DefaultHungerLevel); raw != "" {
		level, err := calculator.ParseHungerLevel(raw)
		if err != nil {
			return fmt.Errorf("default_hunger_level: %w", err)
		}
		cfg.DefaultHungerLevel = level
	}

	if format := normalize(yamlCfg.OutputFormat); format != "" {
		cfg.OutputFormat = format
	}

	if level := normalize(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
// Unusable values are ignored.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("PIZZA_HUNGER_LEVEL")); raw != "" {
		if level, err := calculator.ParseHungerLevel(raw); err == nil {
			cfg.DefaultHungerLevel = level
		}
	}

	if format := normalize(os.Getenv("PIZZA_OUTPUT_FORMAT")); format != "" && contains(outputFormats, format) {
		cfg.OutputFormat = format
	}

	if level := normalize(os.Getenv("LOG_LEVEL")); level != "" && contains(logLevels, level) {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.HungerLevel != nil && *overrides.HungerLevel != "" {
		level, err := calculator.ParseHungerLevel(*overrides.HungerLevel)
		if err != nil {
			return fmt.Errorf("parse hunger level: %w", err)
		}
		cfg.DefaultHungerLevel = level
	}

	if overrides.OutputFormat != nil && *overrides.OutputFormat != "" {
		cfg.OutputFormat = normalize(*overrides.OutputFormat)
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = normalize(*overrides.LogLevel)
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if !cfg.DefaultHungerLevel.IsValid() {
		return fmt.Errorf("default hunger level %s is not supported", cfg.DefaultHungerLevel)
	}
	if !contains(outputFormats, cfg.OutputFormat) {
		return fmt.Errorf("output format must be one of %s, got %q", strings.Join(outputFormats, ", "), cfg.OutputFormat)
	}
	if !contains(logLevels, cfg.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(logLevels, ", "), cfg.LogLevel)
	}
	return nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
