package party

import (
	"math"

	"github.com/eugenenazirov/pizza-party/internal/calculator"
)

// GroupEstimate is the calculation for one group of a plan.
type GroupEstimate struct {
	Name              string `json:"name" yaml:"name"`
	calculator.Result `yaml:",inline"`
}

// Estimate aggregates a whole plan. TotalPizzas is computed from the combined
// slice demand, so it can be lower than the sum of the per-group counts.
// Totals saturate at math.MaxInt.
type Estimate struct {
	Name           string          `json:"name,omitempty" yaml:"name,omitempty"`
	Groups         []GroupEstimate `json:"groups" yaml:"groups"`
	TotalAttendees int             `json:"totalAttendees" yaml:"total_attendees"`
	TotalSlices    int             `json:"totalSlices" yaml:"total_slices"`
	TotalPizzas    int             `json:"totalPizzas" yaml:"total_pizzas"`
	LeftoverSlices int             `json:"leftoverSlices" yaml:"leftover_slices"`
}

// EstimatePlan runs every group through the calculator and sums the results.
func EstimatePlan(plan Plan) Estimate {
	est := Estimate{
		Name:   plan.Name,
		Groups: make([]GroupEstimate, 0, len(plan.Groups)),
	}

	for _, g := range plan.Groups {
		res := calculator.New(g.Size, g.Hunger).Summary()
		est.Groups = append(est.Groups, GroupEstimate{Name: g.Name, Result: res})
		est.TotalAttendees = addCapped(est.TotalAttendees, res.PartySize)
		est.TotalSlices = addCapped(est.TotalSlices, res.TotalSlices)
	}

	est.TotalPizzas = calculator.PizzasForSlices(est.TotalSlices)
	est.LeftoverSlices = calculator.LeftoverSlices(est.TotalSlices)
	return est
}

// addCapped adds two non-negative counts, saturating at math.MaxInt.
func addCapped(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}
