// Package flatcat renders structured documents as flat "path: value" lines.
//
// A [Cat] resolves the format of each [Input], parses it into [ir.Node]
// documents and walks every leaf into an [encode.Renderer]. Inputs whose
// format cannot be determined are printed line by line when [Options.Plain]
// is set.
//
// [Diff] compares the flattened forms of two inputs.
package flatcat
