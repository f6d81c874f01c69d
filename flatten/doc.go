// Package flatten turns documents into ordered (path, leaf) pairs.
//
// A Walker visits a parsed document depth first, in document order, and
// hands every leaf to an Output together with its path. Walkers for the
// different input formats share one traversal and differ only in their
// Leaves classifier:
//
//	w := flatten.NewWalker(flatten.TOMLLeaves, renderer)
//	for _, doc := range docs {
//	    if err := w.Walk(doc); err != nil {
//	        return err
//	    }
//	}
//
// Input that is not structured goes through Plain, which emits one path-less
// leaf per line.
//
// # Related Packages
//
//   - github.com/flatcat-go/flatcat/ir/kpath - path construction
//   - github.com/flatcat-go/flatcat/encode - the usual Output
package flatten
