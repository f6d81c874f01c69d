package ir

import (
	"math"
	"strconv"
	"strings"
)

// Node is a format neutral document value.
//
// Objects keep their keys in Fields and the corresponding values in Values,
// both in insertion order. Arrays keep their elements in Values. Leaves keep
// their payload in String, Bool or Number; numbers additionally carry Int64
// or Float64 when the text fits.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromDatetime returns a datetime leaf holding its textual form.
func FromDatetime(v string) *Node {
	return &Node{
		Type:   DatetimeType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	f := float64(v)
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatUint(v, 10),
		Float64: &f,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  FloatText(f),
		Float64: &f,
	}
}

// FromNumber returns a number leaf keeping text verbatim. Int64 is set when
// text is an integer that fits, Float64 when it is any other valid number.
func FromNumber(text string) *Node {
	res := &Node{
		Type:   NumberType,
		Number: text,
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FloatText formats f in its shortest form, keeping a decimal point so
// floats never read as integers. Magnitudes in [1e-5, 1e16) are written
// without an exponent; others keep a point in the mantissa, as in 1.0e+21.
func FloatText(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if a := math.Abs(f); a == 0 || (a >= 1e-5 && a < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	return mant + "e" + exp
}

// IsInt reports whether a number node holds an integer.
func (y *Node) IsInt() bool {
	if y.Type != NumberType {
		return false
	}
	if y.Int64 != nil {
		return true
	}
	digits := strings.TrimLeft(y.Number, "+-")
	if digits == "" {
		return false
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Append adds v as the last element of array y.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// Set adds key with value v as the last member of object y.
func (y *Node) Set(key string, v *Node) {
	i := len(y.Values)
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Values = append(y.Values, v)
}

// Visit calls f on y before (isPost false) and after (isPost true) its
// children. Children are only visited when the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
