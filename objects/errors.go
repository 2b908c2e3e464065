package objects

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an object utility receives a value it
// cannot operate on.
var ErrInvalidArgument = errors.New("objects: invalid argument")

// ErrNilTarget is returned by [Extend] and [Defaults] for a nil target map.
// It wraps [ErrInvalidArgument].
var ErrNilTarget = fmt.Errorf("%w: target map is nil", ErrInvalidArgument)
