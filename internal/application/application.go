package application

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
	"github.com/eugenenazirov/pizza-party/internal/config"
	"github.com/eugenenazirov/pizza-party/internal/party"
)

// App encapsulates the application dependencies.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	out      io.Writer
	renderer renderer
}

// New initializes the application from the provided configuration.
// Results are written to out; the logger receives a run_id field.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	r, err := newRenderer(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		cfg:      cfg,
		logger:   logger.With(zap.String("run_id", uuid.NewString())),
		out:      out,
		renderer: r,
	}, nil
}

// Calculate sizes a single party. A nil hunger level falls back to the
// configured default.
func (a *App) Calculate(partySize int, hunger *calculator.HungerLevel) error {
	level := a.cfg.DefaultHungerLevel
	if hunger != nil {
		level = *hunger
	}

	if partySize < 0 {
		a.logger.Debug("negative party size treated as empty", zap.Int("party_size", partySize))
	}

	res := calculator.New(partySize, level).Summary()
	a.logger.Info("pizzas calculated",
		zap.Int("party_size", res.PartySize),
		zap.Stringer("hunger_level", res.HungerLevel),
		zap.Int("total_slices", res.TotalSlices),
		zap.Int("total_pizzas", res.TotalPizzas),
	)

	if err := a.renderer.result(a.out, res); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}

// EstimatePlan sizes every group of the plan stored at path.
func (a *App) EstimatePlan(path string) error {
	plan, err := party.Load(path)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", path, err)
	}

	est := party.EstimatePlan(plan)
	a.logger.Info("plan estimated",
		zap.String("plan", est.Name),
		zap.Int("groups", len(est.Groups)),
		zap.Int("total_attendees", est.TotalAttendees),
		zap.Int("total_pizzas", est.TotalPizzas),
	)

	if err := a.renderer.estimate(a.out, est); err != nil {
		return fmt.Errorf("render estimate: %w", err)
	}
	return nil
}

// ListHungerLevels writes every hunger level with its slice rate.
func (a *App) ListHungerLevels() error {
	levels := make([]hungerLevelInfo, 0, len(calculator.HungerLevels()))
	for _, level := range calculator.HungerLevels() {
		levels = append(levels, hungerLevelInfo{
			Name:            level,
			SlicesPerPerson: level.SlicesPerPerson(),
			Default:         level == a.cfg.DefaultHungerLevel,
		})
	}

	if err := a.renderer.levels(a.out, levels); err != nil {
		return fmt.Errorf("render hunger levels: %w", err)
	}
	return nil
}
