package parse

import (
	"fmt"

	"github.com/flatcat-go/flatcat/debug"
	"github.com/flatcat-go/flatcat/format"
	"github.com/flatcat-go/flatcat/ir"
)

// Parse parses d into one node per document. The format defaults to JSON.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		docs []*ir.Node
		err  error
	)
	switch pOpts.format {
	case format.JSONFormat:
		docs, err = parseJSON(d)
	case format.TOMLFormat:
		docs, err = parseTOML(d)
	case format.YAMLFormat:
		docs, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, wrap(pOpts.format, err)
	}
	if debug.Parse() {
		debug.Logf("parse: %d %s document(s) from %d bytes", len(docs), pOpts.format, len(d))
	}
	return docs, nil
}
