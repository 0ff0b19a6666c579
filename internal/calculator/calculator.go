package calculator

import "math"

// SlicesPerPizza is the number of slices every pizza is cut into.
const SlicesPerPizza = 8

// MaxPartySize is the largest party the calculator accepts. Larger parties are
// capped so that slice totals fit in an int at every hunger level.
const MaxPartySize = math.MaxInt / 4

// PizzaCalculator works out how many pizzas a party needs.
// The zero value describes an empty party.
type PizzaCalculator struct {
	partySize   int
	hungerLevel HungerLevel
}

// New creates a calculator for the given party. A negative party size is
// treated as an empty party; sizes above MaxPartySize are capped.
func New(partySize int, hungerLevel HungerLevel) PizzaCalculator {
	switch {
	case partySize < 0:
		partySize = 0
	case partySize > MaxPartySize:
		partySize = MaxPartySize
	}
	return PizzaCalculator{
		partySize:   partySize,
		hungerLevel: hungerLevel,
	}
}

// PartySize returns the normalised number of attendees.
func (c PizzaCalculator) PartySize() int {
	return c.partySize
}

// HungerLevel returns the hunger level the calculator was created with.
func (c PizzaCalculator) HungerLevel() HungerLevel {
	return c.hungerLevel
}

// TotalSlices returns the number of slices the whole party will eat.
func (c PizzaCalculator) TotalSlices() int {
	return c.partySize * c.hungerLevel.SlicesPerPerson()
}

// TotalPizzas returns the smallest number of whole pizzas covering TotalSlices.
func (c PizzaCalculator) TotalPizzas() int {
	return PizzasForSlices(c.TotalSlices())
}

// Summary collects the derived values of the calculation.
func (c PizzaCalculator) Summary() Result {
	slices := c.TotalSlices()
	return Result{
		PartySize:       c.partySize,
		HungerLevel:     c.hungerLevel,
		SlicesPerPerson: c.hungerLevel.SlicesPerPerson(),
		TotalSlices:     slices,
		TotalPizzas:     PizzasForSlices(slices),
		LeftoverSlices:  LeftoverSlices(slices),
	}
}

// PizzasForSlices rounds a slice count up to whole pizzas.
func PizzasForSlices(slices int) int {
	if slices <= 0 {
		return 0
	}
	pizzas := slices / SlicesPerPizza
	if slices%SlicesPerPizza != 0 {
		pizzas++
	}
	return pizzas
}

// LeftoverSlices returns the slices left once PizzasForSlices(slices) pizzas
// have been eaten down to slices.
func LeftoverSlices(slices int) int {
	if slices <= 0 {
		return 0
	}
	return (SlicesPerPizza - slices%SlicesPerPizza) % SlicesPerPizza
}
