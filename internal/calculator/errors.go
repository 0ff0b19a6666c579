package calculator

import "errors"

// ErrUnknownHungerLevel is returned when a name does not match any hunger level.
var ErrUnknownHungerLevel = errors.New("hunger level must be one of light, medium, ravenous")
