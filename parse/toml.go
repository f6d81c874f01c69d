package parse

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/flatcat-go/flatcat/ir"

	"github.com/BurntSushi/toml"
)

// Zone names the toml decoder gives to datetimes without an offset.
const (
	tomlLocalDatetime = "datetime-local"
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
)

// tomlOrder maps a dotted key, joined with NUL, to the position where the
// document first mentions it.
type tomlOrder map[string]int

func parseTOML(d []byte) ([]*ir.Node, error) {
	var m map[string]any
	md, err := toml.Decode(string(d), &m)
	if err != nil {
		return nil, err
	}
	order := tomlOrder{}
	for i, key := range md.Keys() {
		k := strings.Join(key, "\x00")
		if _, ok := order[k]; !ok {
			order[k] = i
		}
	}
	root, err := order.node(m, nil)
	if err != nil {
		return nil, err
	}
	return []*ir.Node{root}, nil
}

func (o tomlOrder) node(v any, prefix []string) (*ir.Node, error) {
	switch x := v.(type) {
	case map[string]any:
		return o.table(x, prefix)
	case []map[string]any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, t := range x {
			child, err := o.table(t, prefix)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, e := range x {
			child, err := o.node(e, prefix)
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
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromDatetime(tomlDatetime(x)), nil
	default:
		return nil, fmt.Errorf("unsupported toml value %T", v)
	}
}

func (o tomlOrder) table(m map[string]any, prefix []string) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for _, key := range o.keys(m, prefix) {
		child, err := o.node(m[key], append(prefix, key))
		if err != nil {
			return nil, err
		}
		res.Set(key, child)
	}
	return res, nil
}

// keys orders the keys of m by document position. Keys the decoder did not
// report sort after the others, by name.
func (o tomlOrder) keys(m map[string]any, prefix []string) []string {
	base := strings.Join(prefix, "\x00")
	pos := func(k string) (int, bool) {
		if base == "" && len(prefix) == 0 {
			i, ok := o[k]
			return i, ok
		}
		i, ok := o[base+"\x00"+k]
		return i, ok
	}
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		ia, aok := pos(a)
		ib, bok := pos(b)
		switch {
		case aok && bok:
			return cmp.Compare(ia, ib)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return keys
}

func tomlDatetime(t time.Time) string {
	switch t.Location().String() {
	case tomlLocalDate:
		return t.Format(time.DateOnly)
	case tomlLocalTime:
		return t.Format("15:04:05.999999999")
	case tomlLocalDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
