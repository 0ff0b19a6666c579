package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/pizza-party/internal/application"
	"github.com/eugenenazirov/pizza-party/internal/calculator"
	"github.com/eugenenazirov/pizza-party/internal/config"
	"github.com/eugenenazirov/pizza-party/internal/logging"
)

var (
	newLogger = logging.New
	version   = "dev"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pizza-party: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("pizza-party", "Pizza Party Calculator - works out how many pizzas a gathering needs")
	kingpinApp.UsageWriter(stdout)
	kingpinApp.Version(version)

	// --help and --version end the run without touching the calculator.
	var terminated bool
	kingpinApp.Terminate(func(int) {
		terminated = true
	})

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	defaultHunger := kingpinApp.Flag("default-hunger", "Hunger level used when none is given (light, medium, ravenous)").String()
	format := kingpinApp.Flag("format", "Output format (text, json, yaml)").Short('o').String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	calculateCmd := kingpinApp.Command("calculate", "Calculate pizzas for a single party").Default()
	partySize := calculateCmd.Arg("party-size", "Number of attendees; negative values count as zero (use -- before them)").Required().Int()
	hunger := calculateCmd.Flag("hunger", "Hunger level of the party").Short('H').Enum("light", "medium", "ravenous")

	planCmd := kingpinApp.Command("plan", "Estimate pizzas for a YAML party plan")
	planFile := planCmd.Arg("file", "Path to the party plan").Required().ExistingFile()

	levelsCmd := kingpinApp.Command("levels", "List hunger levels and their slices per person")

	command, err := kingpinApp.Parse(args)
	if terminated {
		return nil
	}
	if err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *defaultHunger != "" {
		overrides.HungerLevel = defaultHunger
	}

	if *format != "" {
		overrides.OutputFormat = format
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, stdout)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	switch command {
	case calculateCmd.FullCommand():
		var level *calculator.HungerLevel
		if *hunger != "" {
			parsed, parseErr := calculator.ParseHungerLevel(*hunger)
			if parseErr != nil {
				return parseErr
			}
			level = &parsed
		}
		err = app.Calculate(*partySize, level)
	case planCmd.FullCommand():
		err = app.EstimatePlan(*planFile)
	case levelsCmd.FullCommand():
		err = app.ListHungerLevels()
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	return err
}
