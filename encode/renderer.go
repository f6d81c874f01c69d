package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flatcat-go/flatcat/ir"
)

// Renderer writes one "path: value" line per leaf to an io.Writer.
//
// A Renderer numbers the lines it writes, starting at 1. The count carries
// over between documents until ResetCounter is called.
type Renderer struct {
	w      io.Writer
	opts   Options
	colors *Colors
	count  int
	buf    []byte
}

func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		w:      w,
		opts:   o,
		colors: NewColors(o.Color),
		count:  1,
		buf:    make([]byte, 0, 256),
	}
}

func (r *Renderer) Options() Options {
	return r.opts
}

// Counter returns the number the next line will carry.
func (r *Renderer) Counter() int {
	return r.count
}

func (r *Renderer) ResetCounter() {
	r.count = 1
}

// ArraySegment returns the path segment for array index i, styled like
// the rest of the output.
func (r *Renderer) ArraySegment(i int) string {
	if !r.colors.Enabled() {
		return "[" + strconv.Itoa(i) + "]"
	}
	sep := r.colors.Get(ir.ArrayType, SepColor)
	return sep("[") + strconv.Itoa(i) + sep("]")
}

func (r *Renderer) Bool(path []byte, v bool) error {
	return r.writeln(ir.BoolType, path, strconv.FormatBool(v))
}

func (r *Renderer) Datetime(path []byte, v string) error {
	return r.writeln(ir.DatetimeType, path, v)
}

func (r *Renderer) Number(path []byte, v string) error {
	return r.writeln(ir.NumberType, path, v)
}

// String renders s as is; it is not escaped, even when quoted.
func (r *Renderer) String(path []byte, s string) error {
	if r.opts.Quotes {
		s = `"` + s + `"`
	}
	return r.writeln(ir.StringType, path, s)
}

// Null renders a null leaf, unless nulls are disabled.
func (r *Renderer) Null(path []byte) error {
	if !r.opts.Null {
		return nil
	}
	return r.Special(path, "null")
}

func (r *Renderer) Special(path []byte, v string) error {
	return r.writeln(ir.NullType, path, v)
}

// Plain renders line without a path.
func (r *Renderer) Plain(line string) error {
	r.buf = r.prefix(r.buf[:0])
	r.buf = append(r.buf, line...)
	return r.flush()
}

func (r *Renderer) writeln(t ir.Type, path []byte, v string) error {
	r.buf = r.prefix(r.buf[:0])
	r.buf = append(r.buf, path...)
	r.buf = append(r.buf, ": "...)
	r.buf = append(r.buf, r.colors.Color(t, ValueColor, v)...)
	return r.flush()
}

func (r *Renderer) prefix(dst []byte) []byte {
	if !r.opts.Numbers {
		return dst
	}
	n := fmt.Sprintf("%5d", r.count)
	dst = append(dst, r.colors.Color(ir.NumberType, CountColor, n)...)
	return append(dst, "  "...)
}

func (r *Renderer) flush() error {
	if r.opts.EndOfLine {
		r.buf = append(r.buf, '$')
	}
	r.buf = append(r.buf, '\n')
	r.count++
	_, err := r.w.Write(r.buf)
	return err
}
