package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/flatcat-go/flatcat/ir"

	"github.com/goccy/go-json"
)

type jsonFrame struct {
	node   *ir.Node
	key    string
	hasKey bool
	index  map[string]int
}

// parseJSON builds nodes from the decoder's token stream with an explicit
// stack. Token does not check separators, so the input is checked by
// checkJSON first.
func parseJSON(d []byte) ([]*ir.Node, error) {
	if err := checkJSON(d); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var (
		docs  []*ir.Node
		stack []*jsonFrame
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		var top *jsonFrame
		if n := len(stack); n > 0 {
			top = stack[n-1]
		}
		wantKey := top != nil && top.node.Type == ir.ObjectType && !top.hasKey
		var node *ir.Node
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				node = &ir.Node{Type: ir.ObjectType}
			case '[':
				node = &ir.Node{Type: ir.ArrayType}
			case '}', ']':
				if err := top.close(v); err != nil {
					return nil, err
				}
				stack = stack[:len(stack)-1]
				continue
			}
		case string:
			if wantKey {
				top.key = v
				top.hasKey = true
				continue
			}
			node = ir.FromString(v)
		case json.Number:
			node = ir.FromNumber(string(v))
		case float64:
			node = ir.FromFloat(v)
		case bool:
			node = ir.FromBool(v)
		case nil:
			node = ir.Null()
		default:
			return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
		}
		if wantKey {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		if top != nil {
			top.attach(node)
		} else {
			docs = append(docs, node)
		}
		if !node.Type.IsLeaf() {
			stack = append(stack, &jsonFrame{node: node})
		}
	}
	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if len(docs) == 0 {
		return nil, ErrEmpty
	}
	return docs, nil
}

// checkJSON fully decodes every document of d, rejecting malformed ones
// and separators between top-level values.
func checkJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		off := dec.InputOffset()
		if off < 0 || off > int64(len(d)) {
			continue
		}
		rest := bytes.TrimLeft(d[off:], " \t\r\n")
		if len(rest) != 0 && (rest[0] == ',' || rest[0] == ':') {
			return fmt.Errorf("unexpected %q after top-level value at offset %d", rest[0], off)
		}
	}
}

// close checks that delim ends the frame's container.
func (f *jsonFrame) close(delim json.Delim) error {
	switch {
	case f == nil:
		return fmt.Errorf("unexpected %q", rune(delim))
	case f.node.Type == ir.ObjectType && delim != '}':
		return fmt.Errorf("unexpected %q in object", rune(delim))
	case f.node.Type == ir.ArrayType && delim != ']':
		return fmt.Errorf("unexpected %q in array", rune(delim))
	case f.hasKey:
		return fmt.Errorf("missing value for key %q", f.key)
	}
	return nil
}

// attach adds node to the frame's container. A repeated object key keeps
// its first position and takes the last value.
func (f *jsonFrame) attach(node *ir.Node) {
	if f.node.Type == ir.ArrayType {
		f.node.Append(node)
		return
	}
	key := f.key
	f.key, f.hasKey = "", false
	if f.index == nil {
		f.index = map[string]int{}
	}
	if i, ok := f.index[key]; ok {
		node.Parent = f.node
		node.ParentIndex = i
		node.ParentField = key
		f.node.Values[i] = node
		return
	}
	f.index[key] = len(f.node.Values)
	f.node.Set(key, node)
}
