package scene

import "errors"

var (
	// ErrInvalidHero is returned by AddHero for values that are not an
	// interactive.Character.
	ErrInvalidHero = errors.New("hero should implement interactive.Character")

	// ErrInvalidObject is returned by AddObject when the value does not fit
	// the requested kind.
	ErrInvalidObject = errors.New("object does not fit scene kind")
)
