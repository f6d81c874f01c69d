package flatten

import (
	"github.com/flatcat-go/flatcat/debug"
	"github.com/flatcat-go/flatcat/ir"
	"github.com/flatcat-go/flatcat/ir/kpath"
)

// Walker flattens documents into an Output.
type Walker struct {
	Leaves Leaves
	Out    Output

	path   kpath.Builder
	frames []frame
}

// frame is an open container and the index of its next child.
type frame struct {
	node *ir.Node
	next int
}

func NewWalker(leaves Leaves, out Output) *Walker {
	return &Walker{Leaves: leaves, Out: out}
}

// Walk emits every leaf under root, depth first and in document order.
// Empty containers emit nothing. Walk stops at the first Output error.
//
// Containers are tracked on a heap allocated stack, so nesting depth is
// not limited by the goroutine stack.
func (w *Walker) Walk(root *ir.Node) error {
	w.path.Reset()
	w.frames = w.frames[:0]
	if root.Type.IsLeaf() {
		return w.leaf(root)
	}
	w.frames = append(w.frames, frame{node: root})
	leaves, maxDepth := 0, 1
	for len(w.frames) > 0 {
		top := &w.frames[len(w.frames)-1]
		if top.next == len(top.node.Values) {
			w.frames = w.frames[:len(w.frames)-1]
			w.path.Pop()
			continue
		}
		i := top.next
		top.next++
		if top.node.Type == ir.ArrayType {
			w.path.PushRaw(w.Out.ArraySegment(i))
		} else {
			w.path.Push(top.node.Fields[i].String)
		}
		child := top.node.Values[i]
		if !child.Type.IsLeaf() {
			w.frames = append(w.frames, frame{node: child})
			maxDepth = max(maxDepth, len(w.frames))
			continue
		}
		if err := w.leaf(child); err != nil {
			return err
		}
		leaves++
		w.path.Pop()
	}
	if debug.Walk() {
		debug.LogAny(map[string]int{"leaves": leaves, "maxDepth": maxDepth})
	}
	return nil
}

func (w *Walker) leaf(n *ir.Node) error {
	kind, text := w.Leaves(n)
	path := w.path.Bytes()
	switch kind {
	case NullLeaf:
		return w.Out.Null(path)
	case BoolLeaf:
		return w.Out.Bool(path, n.Bool)
	case NumberLeaf:
		return w.Out.Number(path, text)
	case DatetimeLeaf:
		return w.Out.Datetime(path, text)
	case SpecialLeaf:
		return w.Out.Special(path, text)
	default:
		return w.Out.String(path, text)
	}
}
