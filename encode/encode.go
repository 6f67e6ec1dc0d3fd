// Package encode renders TOON syntax trees back to canonical text.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ast"
)

type EncState struct {
	indent  int
	newline string
	depth   int

	Color func(ast.Kind, ColorAttr, string) string
}

// Encode writes the canonical rendition of node to w. Serializing a
// parsed document and re-parsing it yields an identical tree up to
// source ranges and Empty nodes.
func Encode(node *ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:  2,
		newline: "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ast.Node, w io.Writer, es *EncState) error {
	switch n.Kind {
	case ast.DocumentKind:
		for _, c := range n.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return nil
	case ast.EmptyKind:
		return writeString(w, es.newline)
	case ast.KeyValueKind:
		line := es.color(n.Kind, FieldColor, n.Key) + es.color(n.Kind, SepColor, ":")
		if n.Value != "" {
			line += " " + es.color(n.Kind, ValueColor, n.Value)
		}
		return writeLine(w, es, line)
	case ast.BlockKind:
		header := es.color(n.Kind, FieldColor, n.Key) + es.color(n.Kind, SepColor, ":")
		if err := writeLine(w, es, header); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		for _, c := range n.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return nil
	case ast.SimpleArrayKind:
		line := es.color(n.Kind, FieldColor, n.Name) + es.size(n)
		line += es.color(n.Kind, SepColor, ":")
		if len(n.Values) > 0 {
			line += " " + es.cells(n.Kind, n.Values)
		}
		return writeLine(w, es, line)
	case ast.StructuredArrayKind:
		names := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			names[i] = es.color(ast.FieldKind, FieldColor, f.Name)
		}
		header := es.color(n.Kind, FieldColor, n.Name) + es.size(n)
		header += es.color(n.Kind, SepColor, "{") +
			strings.Join(names, es.color(n.Kind, SepColor, ",")) +
			es.color(n.Kind, SepColor, "}") +
			es.color(n.Kind, SepColor, ":")
		if err := writeLine(w, es, header); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		for _, row := range n.Rows {
			if err := encode(row, w, es); err != nil {
				return err
			}
		}
		return nil
	case ast.DataRowKind:
		return writeLine(w, es, es.cells(n.Kind, n.Values))
	case ast.ValueKind:
		return writeLine(w, es, es.color(n.Kind, ValueColor, n.Value))
	case ast.FieldKind:
		return writeLine(w, es, es.color(n.Kind, FieldColor, n.Name))
	default:
		return fmt.Errorf("%w: unknown node kind %d", ErrEncoding, int(n.Kind))
	}
}

func (es *EncState) size(n *ast.Node) string {
	return es.color(n.Kind, SepColor, "[") +
		es.color(n.Kind, SizeColor, strconv.Itoa(n.Size)) +
		es.color(n.Kind, SepColor, "]")
}

func (es *EncState) cells(kind ast.Kind, values []*ast.Node) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = es.color(ast.ValueKind, ValueColor, v.Value)
	}
	return strings.Join(cells, es.color(kind, SepColor, ","))
}

func (es *EncState) color(kind ast.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(kind, attr, s)
}

func writeLine(w io.Writer, es *EncState, content string) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, pad+content+es.newline)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
