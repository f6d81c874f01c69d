package encode

import (
	"github.com/flatcat-go/flatcat/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	SepColor
	CountColor
)

// Colors maps what is being rendered to a styling function.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors returns the renderer palette. When enabled is false every
// entry renders its input unchanged.
//
// Each color is forced on or off on its own instance, so the result does
// not depend on color.NoColor or the terminal.
func NewColors(enabled bool) *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string) string{},
	}
	if !enabled {
		return colors
	}
	set := func(able Colorable, attrs ...color.Attribute) {
		c := color.New(attrs...)
		c.EnableColor()
		sprint := c.SprintFunc()
		colors.Map[able] = func(v string) string { return sprint(v) }
	}
	set(Colorable{Type: ir.ArrayType, Attr: SepColor}, color.FgGreen)
	set(Colorable{Type: ir.BoolType, Attr: ValueColor}, color.FgRed)
	set(Colorable{Type: ir.DatetimeType, Attr: ValueColor}, color.FgGreen)
	set(Colorable{Type: ir.NumberType, Attr: ValueColor}, color.FgBlue)
	set(Colorable{Type: ir.StringType, Attr: ValueColor}, color.FgYellow)
	set(Colorable{Type: ir.NullType, Attr: ValueColor}, color.FgWhite, color.Italic)
	set(Colorable{Type: ir.NumberType, Attr: CountColor}, color.FgYellow)
	return colors
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Enabled reports whether any style is active.
func (c *Colors) Enabled() bool {
	return len(c.Map) != 0
}
