package party

import "errors"

var (
	// ErrEmptyPlan is returned when a plan lists no groups.
	ErrEmptyPlan = errors.New("party plan must contain at least one group")
	// ErrInvalidGroup is returned when a group cannot be interpreted.
	ErrInvalidGroup = errors.New("invalid party group")
)
