package fbrt

import (
	"errors"
	"fmt"
)

// Unsupported is the result type of accessors that are not generated.
// Calling such an accessor panics with an error wrapping ErrUnsupported, and
// the type cannot be compared or converted to the field's real type.
type Unsupported struct {
	_ [0]func()
}

// ErrUnsupported marks accessors that have no generated body.
var ErrUnsupported = errors.New("accessor not supported")

// UnsupportedAccessor returns the error a placeholder accessor panics with.
func UnsupportedAccessor(record, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnsupported, record, field)
}
