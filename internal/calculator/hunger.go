package calculator

import (
	"fmt"
	"strings"
)

// HungerLevel describes how hungry the attendees are. The set of levels is
// closed; each one carries a fixed slices-per-person rate.
type HungerLevel int

const (
	// Light eaters have 2 slices each.
	Light HungerLevel = iota + 1
	// Medium eaters have 3 slices each.
	Medium
	// Ravenous eaters have 4 slices each.
	Ravenous
)

var hungerLevels = [...]struct {
	name   string
	slices int
}{
	Light:    {name: "light", slices: 2},
	Medium:   {name: "medium", slices: 3},
	Ravenous: {name: "ravenous", slices: 4},
}

// HungerLevels returns every hunger level ordered by appetite.
func HungerLevels() []HungerLevel {
	return []HungerLevel{Light, Medium, Ravenous}
}

// IsValid reports whether h is one of the declared levels.
func (h HungerLevel) IsValid() bool {
	return h >= Light && h <= Ravenous
}

// SlicesPerPerson returns how many slices one attendee eats at this level.
// Values outside the enumeration eat nothing.
func (h HungerLevel) SlicesPerPerson() int {
	if !h.IsValid() {
		return 0
	}
	return hungerLevels[h].slices
}

func (h HungerLevel) String() string {
	if !h.IsValid() {
		return fmt.Sprintf("HungerLevel(%d)", int(h))
	}
	return hungerLevels[h].name
}

// ParseHungerLevel resolves a level by name, ignoring case and surrounding space.
func ParseHungerLevel(raw string) (HungerLevel, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, level := range HungerLevels() {
		if hungerLevels[level].name == name {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHungerLevel, raw)
}

// MarshalText implements encoding.TextMarshaler.
func (h HungerLevel) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHungerLevel, int(h))
	}
	return []byte(hungerLevels[h].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HungerLevel) UnmarshalText(text []byte) error {
	level, err := ParseHungerLevel(string(text))
	if err != nil {
		return err
	}
	*h = level
	return nil
}
