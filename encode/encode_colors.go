package encode

import (
	"errors"
	"strings"

	"github.com/toon-format/go-toon/ast"

	"github.com/fatih/color"
)

var ErrEncoding = errors.New("encoding error")

type Colorable struct {
	Kind ast.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SizeColor
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
	for _, k := range ast.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SizeColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		able.Attr = ValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ast.SimpleArrayKind, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ast.StructuredArrayKind, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ast.FieldKind, Attr: FieldColor}] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string {
	return v
}

func (c *Colors) Color(kind ast.Kind, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Kind: kind, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f(v)
}
