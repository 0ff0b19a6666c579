package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
	"github.com/eugenenazirov/pizza-party/internal/config"
	"github.com/eugenenazirov/pizza-party/internal/party"
)

// ErrUnknownFormat is returned for output formats without a renderer.
var ErrUnknownFormat = errors.New("unknown output format")

type hungerLevelInfo struct {
	Name            calculator.HungerLevel `json:"name" yaml:"name"`
	SlicesPerPerson int                    `json:"slicesPerPerson" yaml:"slices_per_person"`
	Default         bool                   `json:"default" yaml:"default"`
}

type renderer struct {
	result   func(io.Writer, calculator.Result) error
	estimate func(io.Writer, party.Estimate) error
	levels   func(io.Writer, []hungerLevelInfo) error
}

func newRenderer(format string) (renderer, error) {
	switch format {
	case config.FormatText:
		return renderer{result: writeResultText, estimate: writeEstimateText, levels: writeLevelsText}, nil
	case config.FormatJSON:
		return renderer{
			result:   func(w io.Writer, r calculator.Result) error { return writeJSON(w, r) },
			estimate: func(w io.Writer, e party.Estimate) error { return writeJSON(w, e) },
			levels:   func(w io.Writer, l []hungerLevelInfo) error { return writeJSON(w, l) },
		}, nil
	case config.FormatYAML:
		return renderer{
			result:   func(w io.Writer, r calculator.Result) error { return writeYAML(w, r) },
			estimate: func(w io.Writer, e party.Estimate) error { return writeYAML(w, e) },
			levels:   func(w io.Writer, l []hungerLevelInfo) error { return writeYAML(w, l) },
		}, nil
	default:
		return renderer{}, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeYAML(w io.Writer, payload any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	return enc.Close()
}

func writeResultText(w io.Writer, r calculator.Result) error {
	_, err := fmt.Fprintf(w,
		"Party of %d (%s, %d slices each) needs %d slices: order %s, %d left over.\n",
		r.PartySize, r.HungerLevel, r.SlicesPerPerson, r.TotalSlices, pizzaCount(r.TotalPizzas), r.LeftoverSlices,
	)
	return err
}

func writeEstimateText(w io.Writer, e party.Estimate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if e.Name != "" {
		fmt.Fprintf(tw, "Plan: %s\n", e.Name)
	}
	fmt.Fprintln(tw, "GROUP\tSIZE\tHUNGER\tSLICES\tPIZZAS")
	for _, g := range e.Groups {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\n", g.Name, g.PartySize, g.HungerLevel, g.TotalSlices, g.TotalPizzas)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t\t%d\t%d\n", e.TotalAttendees, e.TotalSlices, e.TotalPizzas)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Order %s, %d left over.\n", pizzaCount(e.TotalPizzas), e.LeftoverSlices)
	return err
}

func writeLevelsText(w io.Writer, levels []hungerLevelInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tSLICES PER PERSON")
	for _, l := range levels {
		marker := ""
		if l.Default {
			marker = " (default)"
		}
		fmt.Fprintf(tw, "%s%s\t%d\n", l.Name, marker, l.SlicesPerPerson)
	}
	return tw.Flush()
}

func pizzaCount(n int) string {
	if n == 1 {
		return "1 pizza"
	}
	return fmt.Sprintf("%d pizzas", n)
}
