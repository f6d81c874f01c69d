// Package format names the structured input formats and resolves which one
// applies to an input.
//
// # Usage
//
//	// From a user supplied name
//	f, err := format.ParseFormat("yaml")
//
//	// From a hint, falling back to the file extension
//	f, err := format.Resolve(nil, "config.toml")
//	if errors.Is(err, format.ErrUnknownFormat) {
//	    // neither hint nor extension says what this is
//	}
package format
