package flatcat

import (
	"fmt"

	"github.com/flatcat-go/flatcat/format"
)

// ErrUnknownFormat is returned for inputs whose format cannot be resolved
// when plain fallback is off.
var ErrUnknownFormat = format.ErrUnknownFormat

// IOError records a failure opening, reading or writing an input.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
