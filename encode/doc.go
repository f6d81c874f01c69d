// Package encode renders flattened leaves as text lines.
//
// # Usage
//
//	r := encode.NewRenderer(os.Stdout,
//	    encode.WithColor(false),
//	    encode.WithNumbers(true))
//	r.Number([]byte(".a"), "1")     // "    1  .a: 1"
//	r.String([]byte(".b[0]"), "x")  // "    2  .b[0]: \"x\""
//
// Each call writes exactly one line. Colors are decided once, when the
// renderer is built, and never read from or written to process wide state.
//
// # Related Packages
//
//   - github.com/flatcat-go/flatcat/flatten - drives a Renderer
package encode
