package ir

import "strconv"

// Path returns the flattened path of y from the root of its tree: ".key"
// for object members and "[i]" for array elements. The root's path is
// empty.
//
// Path walks parent links and allocates on every call; flattening uses
// kpath.Builder instead.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + y.ParentField
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Leaves returns the leaves under y in pre-order.
func (y *Node) Leaves() []*Node {
	var res []*Node
	_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if n.Type.IsLeaf() {
			res = append(res, n)
			return false, nil
		}
		return true, nil
	})
	return res
}
