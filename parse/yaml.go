package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/flatcat-go/flatcat/ir"

	"github.com/goccy/go-yaml"
)

// parseYAML decodes every document of d. A repeated mapping key keeps its
// first position and takes the last value, as in JSON.
func parseYAML(d []byte) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	var docs []*ir.Node
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		node, err := yamlNode(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, node)
	}
	return docs, nil
}

func yamlNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		index := make(map[string]int, len(x))
		for _, item := range x {
			child, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			key := yamlKey(item.Key)
			if i, ok := index[key]; ok {
				child.Parent = res
				child.ParentIndex = i
				child.ParentField = key
				res.Values[i] = child
				continue
			}
			index[key] = len(res.Values)
			res.Set(key, child)
		}
		return res, nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, e := range x {
			child, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromUint(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		// only explicitly tagged !!timestamp scalars decode to time.Time;
		// untagged ones stay strings.
		return ir.FromString(yamlTime(x)), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value %T", v)
	}
}

// yamlKey returns the path text of a mapping key. The decoder already
// turns non-string keys into their scalar text.
func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func yamlTime(t time.Time) string {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}
