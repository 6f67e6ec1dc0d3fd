package query

import (
	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/token"
)

// DefinitionAt resolves the data-row cell at pos to the declaration
// range of the field at the same positional index. Every other node kind
// has no definition target.
func DefinitionAt(doc *ast.Node, pos token.Pos) (token.Range, bool) {
	d := &definer{pos: pos}
	ast.Walk(doc, d)
	return d.res, d.ok
}

type definer struct {
	pos token.Pos
	res token.Range
	ok  bool
}

func (d *definer) VisitValue(n *ast.Node) {
	if d.ok || !n.Span.Contains(d.pos) {
		return
	}
	row := n.Parent
	if row == nil || row.Kind != ast.DataRowKind {
		return
	}
	arr := row.Parent
	if arr == nil || arr.Kind != ast.StructuredArrayKind {
		return
	}
	if n.ParentIndex >= len(arr.Fields) {
		return
	}
	d.res = arr.Fields[n.ParentIndex].Span
	d.ok = true
}
