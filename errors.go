package anyon

import "errors"

var (
	// ErrInvalidIndex is returned when a braid index falls outside the
	// range of adjacent anyon pairs.
	ErrInvalidIndex = errors.New("invalid braid index")

	// ErrInvalidState is returned when a state violates the fusion rules.
	ErrInvalidState = errors.New("invalid anyonic state")

	// ErrInvalidShape is returned for anyon or qudit counts that do not
	// describe a fusion space.
	ErrInvalidShape = errors.New("invalid fusion space shape")
)
