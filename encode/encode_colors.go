package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jvkit/jv/stream"
	"github.com/jvkit/jv/value"
)

type Colorable struct {
	Type value.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: ValueColor}

	able.Type = value.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = value.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = value.BoolType
	colors.Map[able] = color.CyanString

	able.Type = value.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = value.BinaryType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Type = value.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = value.ArrayType
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t value.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t value.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// eventColor maps the tokens of the event encoder onto value colors.
func (es *EncState) eventColor(t stream.EventType, s string) string {
	switch t {
	case stream.EventBeginObject, stream.EventEndObject:
		return es.Color(value.ObjectType, SepColor, s)
	case stream.EventBeginArray, stream.EventEndArray:
		return es.Color(value.ArrayType, SepColor, s)
	case stream.EventKey:
		return es.Color(value.ObjectType, FieldColor, s)
	case stream.EventString:
		return es.Color(es.leaf, ValueColor, s)
	case stream.EventNumber:
		return es.Color(value.NumberType, ValueColor, s)
	case stream.EventBool:
		return es.Color(value.BoolType, ValueColor, s)
	case stream.EventNull:
		return es.Color(value.NullType, ValueColor, s)
	}
	return s
}
