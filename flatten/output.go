package flatten

// Output receives leaves. Paths passed to Output are only valid for the
// duration of the call.
type Output interface {
	Null(path []byte) error
	Bool(path []byte, v bool) error
	Number(path []byte, v string) error
	String(path []byte, v string) error
	Datetime(path []byte, v string) error
	Special(path []byte, v string) error
	// Plain emits a leaf without a path.
	Plain(line string) error
	// ArraySegment returns the path segment for array index i.
	ArraySegment(i int) string
}
