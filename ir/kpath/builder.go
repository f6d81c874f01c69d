package kpath

import "strconv"

// Separator precedes every object member segment.
const Separator = '.'

// Builder tracks the path of the current position in a traversal.
//
// The zero value is an empty path ready for use.
type Builder struct {
	path []byte
	segs []int
}

// NewBuilder returns a builder with room for a path of n bytes.
func NewBuilder(n int) *Builder {
	return &Builder{path: make([]byte, 0, n)}
}

// Push appends an object member segment.
func (b *Builder) Push(key string) {
	b.path = append(b.path, Separator)
	b.path = append(b.path, key...)
	b.segs = append(b.segs, len(key)+1)
}

// PushIndex appends an array element segment "[i]".
func (b *Builder) PushIndex(i int) {
	n := len(b.path)
	b.path = append(b.path, '[')
	b.path = strconv.AppendInt(b.path, int64(i), 10)
	b.path = append(b.path, ']')
	b.segs = append(b.segs, len(b.path)-n)
}

// PushRaw appends seg verbatim as one segment.
func (b *Builder) PushRaw(seg string) {
	b.path = append(b.path, seg...)
	b.segs = append(b.segs, len(seg))
}

// Pop removes the most recently pushed segment. Popping an empty path does
// nothing.
func (b *Builder) Pop() {
	n := len(b.segs)
	if n == 0 {
		return
	}
	b.path = b.path[:len(b.path)-b.segs[n-1]]
	b.segs = b.segs[:n-1]
}

// Depth returns the number of pushed segments.
func (b *Builder) Depth() int {
	return len(b.segs)
}

// Len returns the length in bytes of the current path.
func (b *Builder) Len() int {
	return len(b.path)
}

// Bytes returns the current path. The result aliases the builder's buffer
// and is only valid until the next Push or Pop.
func (b *Builder) Bytes() []byte {
	return b.path
}

func (b *Builder) String() string {
	return string(b.path)
}

// Reset empties the path, keeping the allocated buffer.
func (b *Builder) Reset() {
	b.path = b.path[:0]
	b.segs = b.segs[:0]
}
