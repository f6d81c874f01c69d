package flatcat

import (
	"io"
	"os"

	"github.com/flatcat-go/flatcat/format"
)

// Input is a named document source.
//
// Name drives format detection by extension unless Hint is set. An Input
// built by FromPath is opened when it is read; "-" reads os.Stdin.
type Input struct {
	Name string
	Hint *format.Format

	r io.Reader
}

func FromPath(p string) Input {
	return Input{Name: p}
}

// FromReader returns an Input reading r. name is only used for format
// detection and error messages.
func FromReader(name string, r io.Reader) Input {
	return Input{Name: name, r: r}
}

// WithHint returns a copy of in which is always read as f.
func (in Input) WithHint(f format.Format) Input {
	in.Hint = &f
	return in
}

func (in Input) open() (io.Reader, func() error, error) {
	if in.r != nil {
		return in.r, nopClose, nil
	}
	if in.Name == "-" || in.Name == "" {
		return os.Stdin, nopClose, nil
	}
	f, err := os.Open(in.Name)
	if err != nil {
		return nil, nil, &IOError{Op: "open", Path: in.Name, Err: err}
	}
	return f, f.Close, nil
}

func nopClose() error { return nil }
