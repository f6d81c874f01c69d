package flatten

import (
	"math"
	"strconv"

	"github.com/flatcat-go/flatcat/format"
	"github.com/flatcat-go/flatcat/ir"
)

type LeafKind int

const (
	NullLeaf LeafKind = iota
	BoolLeaf
	NumberLeaf
	StringLeaf
	DatetimeLeaf
	SpecialLeaf
)

func (k LeafKind) String() string {
	switch k {
	case NullLeaf:
		return "null"
	case BoolLeaf:
		return "bool"
	case NumberLeaf:
		return "number"
	case StringLeaf:
		return "string"
	case DatetimeLeaf:
		return "datetime"
	case SpecialLeaf:
		return "special"
	default:
		return "<unknown leaf>"
	}
}

// Leaves classifies a leaf node for one input format and returns the text
// to render. The text of bool and null leaves is informational.
type Leaves func(n *ir.Node) (LeafKind, string)

// JSONLeaves classifies leaves of JSON documents.
func JSONLeaves(n *ir.Node) (LeafKind, string) {
	switch n.Type {
	case ir.BoolType:
		return BoolLeaf, strconv.FormatBool(n.Bool)
	case ir.NumberType:
		return NumberLeaf, n.Number
	case ir.StringType, ir.DatetimeType:
		return StringLeaf, n.String
	default:
		return NullLeaf, "null"
	}
}

// TOMLLeaves classifies leaves of TOML documents. TOML has no null.
func TOMLLeaves(n *ir.Node) (LeafKind, string) {
	switch n.Type {
	case ir.BoolType:
		return BoolLeaf, strconv.FormatBool(n.Bool)
	case ir.NumberType:
		if f := n.Float64; f != nil {
			switch {
			case math.IsInf(*f, 1):
				return NumberLeaf, "inf"
			case math.IsInf(*f, -1):
				return NumberLeaf, "-inf"
			case math.IsNaN(*f):
				return NumberLeaf, "nan"
			}
		}
		return NumberLeaf, n.Number
	case ir.StringType:
		return StringLeaf, n.String
	case ir.DatetimeType:
		return DatetimeLeaf, n.String
	default:
		return NullLeaf, "null"
	}
}

// YAMLLeaves classifies leaves of YAML documents. Infinities and NaN are
// special leaves spelled the YAML way.
func YAMLLeaves(n *ir.Node) (LeafKind, string) {
	switch n.Type {
	case ir.BoolType:
		return BoolLeaf, strconv.FormatBool(n.Bool)
	case ir.NumberType:
		if f := n.Float64; f != nil {
			switch {
			case math.IsInf(*f, 1):
				return SpecialLeaf, ".inf"
			case math.IsInf(*f, -1):
				return SpecialLeaf, "-.inf"
			case math.IsNaN(*f):
				return SpecialLeaf, ".nan"
			}
		}
		return NumberLeaf, n.Number
	case ir.StringType, ir.DatetimeType:
		return StringLeaf, n.String
	default:
		return NullLeaf, "null"
	}
}

// LeavesFor returns the classifier for f.
func LeavesFor(f format.Format) Leaves {
	switch f {
	case format.TOMLFormat:
		return TOMLLeaves
	case format.YAMLFormat:
		return YAMLLeaves
	default:
		return JSONLeaves
	}
}
