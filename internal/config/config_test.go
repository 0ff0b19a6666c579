package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PIZZA_HUNGER_LEVEL", "")
	t.Setenv("PIZZA_OUTPUT_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func strPtr(s string) *string {
	return &s
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.DefaultHungerLevel != calculator.Medium {
		t.Fatalf("expected default hunger level medium, got %s", cfg.DefaultHungerLevel)
	}
	if cfg.OutputFormat != FormatText {
		t.Fatalf("expected text output, got %s", cfg.OutputFormat)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIZZA_HUNGER_LEVEL", "Ravenous")
	t.Setenv("PIZZA_OUTPUT_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DefaultHungerLevel != calculator.Ravenous {
		t.Fatalf("expected ravenous, got %s", cfg.DefaultHungerLevel)
	}
	if cfg.OutputFormat != FormatJSON {
		t.Fatalf("expected json output, got %s", cfg.OutputFormat)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %s", cfg.LogLevel)
	}
}

func TestLoadIgnoresInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIZZA_HUNGER_LEVEL", "famished")
	t.Setenv("PIZZA_OUTPUT_FORMAT", "xml")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected invalid env to be ignored, got %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIZZA_HUNGER_LEVEL", "light")
	t.Setenv("PIZZA_OUTPUT_FORMAT", "json")

	path := writeConfig(t, "default_hunger_level: ravenous\noutput_format: yaml\nlog_level: warn\n")

	cfg, err := Load(&CLIOverrides{
		ConfigFile:   path,
		OutputFormat: strPtr("TEXT"),
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// env beats YAML
	if cfg.DefaultHungerLevel != calculator.Light {
		t.Fatalf("expected env hunger level light, got %s", cfg.DefaultHungerLevel)
	}
	// CLI beats env
	if cfg.OutputFormat != FormatText {
		t.Fatalf("expected CLI output format text, got %s", cfg.OutputFormat)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected YAML log level warn, got %s", cfg.LogLevel)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeConfig(t, "output_format: [")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unknown hunger level", func(t *testing.T) {
		path := writeConfig(t, "default_hunger_level: peckish\n")
		_, err := Load(&CLIOverrides{ConfigFile: path})
		if !errors.Is(err, calculator.ErrUnknownHungerLevel) {
			t.Fatalf("expected ErrUnknownHungerLevel, got %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeConfig(t, "output_format: xml\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected validation error for unsupported format")
		}
	})
}

func TestLoadCLIErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{HungerLevel: strPtr("starving")}); !errors.Is(err, calculator.ErrUnknownHungerLevel) {
		t.Fatalf("expected ErrUnknownHungerLevel, got %v", err)
	}
	if _, err := Load(&CLIOverrides{LogLevel: strPtr("verbose")}); err == nil {
		t.Fatalf("expected error for unsupported log level")
	}
}
