package party

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
)

// Plan describes an event as a list of groups.
type Plan struct {
	Name   string
	Groups []Group
}

// Group is a set of attendees sharing a hunger level.
type Group struct {
	Name   string
	Size   int
	Hunger calculator.HungerLevel
}

// yamlGroup keeps the hunger level as text so parse errors can name the group.
type yamlGroup struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	Hunger string `yaml:"hunger"`
}

type yamlPlan struct {
	Name   string      `yaml:"name"`
	Groups []yamlGroup `yaml:"groups"`
}

// Load reads a plan from a YAML file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML plan. Groups without a hunger level default to medium.
func Parse(data []byte) (Plan, error) {
	var raw yamlPlan
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Plan{}, fmt.Errorf("parse YAML: %w", err)
	}
	if len(raw.Groups) == 0 {
		return Plan{}, ErrEmptyPlan
	}

	plan := Plan{
		Name:   strings.TrimSpace(raw.Name),
		Groups: make([]Group, 0, len(raw.Groups)),
	}
	for idx, g := range raw.Groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			name = fmt.Sprintf("group %d", idx+1)
		}

		hunger := calculator.Medium
		if strings.TrimSpace(g.Hunger) != "" {
			level, err := calculator.ParseHungerLevel(g.Hunger)
			if err != nil {
				return Plan{}, fmt.Errorf("%w %q: %w", ErrInvalidGroup, name, err)
			}
			hunger = level
		}

		plan.Groups = append(plan.Groups, Group{
			Name:   name,
			Size:   g.Size,
			Hunger: hunger,
		})
	}

	return plan, nil
}
