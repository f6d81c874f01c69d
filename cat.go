package flatcat

import (
	"errors"
	"fmt"
	"io"

	"github.com/flatcat-go/flatcat/encode"
	"github.com/flatcat-go/flatcat/flatten"
	"github.com/flatcat-go/flatcat/format"
	"github.com/flatcat-go/flatcat/parse"
)

// Cat flattens inputs into a single renderer.
//
// Value numbering continues across inputs unless ResetNumbers is set.
type Cat struct {
	out  *encode.Renderer
	opts Options
}

func New(out *encode.Renderer, opts Options) *Cat {
	return &Cat{out: out, opts: opts}
}

func (c *Cat) Cat(in Input) error {
	if c.opts.ResetNumbers {
		c.out.ResetCounter()
	}
	f, err := format.Resolve(in.Hint, in.Name)
	if err != nil {
		if !c.opts.Plain || !errors.Is(err, format.ErrUnknownFormat) {
			return err
		}
		return c.plain(in)
	}
	r, closeFn, err := in.open()
	if err != nil {
		return err
	}
	defer closeFn()
	d, err := io.ReadAll(r)
	if err != nil {
		return &IOError{Op: "read", Path: in.Name, Err: err}
	}
	docs, err := parse.Parse(d, parse.ParseFormat(f))
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(in), err)
	}
	w := flatten.NewWalker(flatten.LeavesFor(f), c.out)
	for _, doc := range docs {
		if err := w.Walk(doc); err != nil {
			return &IOError{Op: "write", Path: in.Name, Err: err}
		}
	}
	return nil
}

func (c *Cat) plain(in Input) error {
	r, closeFn, err := in.open()
	if err != nil {
		return err
	}
	defer closeFn()
	err = flatten.Plain(&readErrReader{r: r, name: in.Name}, c.out)
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: "write", Path: in.Name, Err: err}
}

// readErrReader tags read failures so they can be told apart from sink
// failures.
type readErrReader struct {
	r    io.Reader
	name string
}

func (r *readErrReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF {
		err = &IOError{Op: "read", Path: r.name, Err: err}
	}
	return n, err
}

func displayName(in Input) string {
	if in.Name == "" {
		return "-"
	}
	return in.Name
}
