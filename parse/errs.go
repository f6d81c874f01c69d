package parse

import (
	"errors"
	"fmt"

	"github.com/flatcat-go/flatcat/format"
)

var (
	ErrParse = errors.New("parse error")
	ErrEmpty = fmt.Errorf("%w: empty document", ErrParse)
)

// Error reports input that is malformed for the selected format.
type Error struct {
	Format format.Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func wrap(f format.Format, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Format: f, Err: err}
}
