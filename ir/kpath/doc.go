// Package kpath builds flattened key paths incrementally.
//
// A path is a sequence of segments:
//   - .field - Object member
//   - [index] - Array element, written without a separator
//
// # Usage
//
//	var b kpath.Builder
//	b.Push("users")  // ".users"
//	b.PushIndex(0)   // ".users[0]"
//	b.Push("name")   // ".users[0].name"
//	b.Pop()          // ".users[0]"
//
// One Builder is reused across a whole traversal; Push and Pop only touch
// the end of a single buffer.
//
// # Related Packages
//
//   - github.com/flatcat-go/flatcat/flatten - walks documents with a Builder
package kpath
