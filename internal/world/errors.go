package world

import (
	"errors"
	"fmt"
)

// Precondition failure kinds. The core panics with a *PreconditionError
// wrapping one of these; they indicate a programming defect in the caller.
var (
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrInvalidRegion  = errors.New("invalid region id")
	ErrInvalidTerrain = errors.New("invalid terrain")
	ErrInvalidGrid    = errors.New("invalid grid")
)

// PreconditionError describes a violated precondition.
type PreconditionError struct {
	Kind   error
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("world: %v: %s", e.Kind, e.Detail)
}

func (e *PreconditionError) Unwrap() error {
	return e.Kind
}

// violated panics with a PreconditionError of the given kind.
func violated(kind error, format string, args ...any) {
	panic(&PreconditionError{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
