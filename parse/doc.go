// Package parse reads JSON, TOML and YAML text into ir nodes.
//
// # Usage
//
//	docs, err := parse.Parse(data, parse.ParseTOML())
//	if err != nil {
//	    return err // *parse.Error, errors.Is(err, parse.ErrParse)
//	}
//
// Object members keep their document order. Numbers keep the text the
// format gives them. JSON value streams and multi-document YAML yield one
// node per document.
//
// # Related Packages
//
//   - github.com/flatcat-go/flatcat/ir - the value model
//   - github.com/flatcat-go/flatcat/flatten - walks parsed documents
package parse
