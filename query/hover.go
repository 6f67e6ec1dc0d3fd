// Package query answers position queries over TOON syntax trees.
package query

import (
	"fmt"
	"strings"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/token"
)

// Hover is a markdown summary of the construct at a position.
type Hover struct {
	Contents string
	Range    token.Range
}

// HoverAt returns hover content for pos, or nil when nothing at pos has
// a summary. The first matching node in traversal order wins, so a name
// or field range takes priority over value ranges nested under the same
// construct.
func HoverAt(doc *ast.Node, pos token.Pos) *Hover {
	h := &hoverer{pos: pos}
	ast.Walk(doc, h)
	return h.res
}

type hoverer struct {
	pos token.Pos
	res *Hover
}

func (h *hoverer) hit(r token.Range, parts ...string) {
	h.res = &Hover{
		Contents: strings.Join(parts, "\n\n"),
		Range:    r,
	}
}

func (h *hoverer) VisitKeyValue(n *ast.Node) {
	if h.res != nil {
		return
	}
	if !n.KeyRange.Contains(h.pos) && !n.ValueRange.Contains(h.pos) {
		return
	}
	r := n.KeyRange
	if n.ValueRange.Contains(h.pos) {
		r = n.ValueRange
	}
	h.hit(r,
		fmt.Sprintf("**Key:** `%s`", n.Key),
		fmt.Sprintf("**Value:** `%s`", n.Value),
	)
}

func (h *hoverer) VisitSimpleArray(n *ast.Node) {
	if h.res != nil || !n.NameRange.Contains(h.pos) {
		return
	}
	h.hit(n.NameRange,
		fmt.Sprintf("**Array:** `%s`", n.Name),
		fmt.Sprintf("**Declared size:** %d", n.Size),
		fmt.Sprintf("**Values:** %d", len(n.Values)),
	)
}

func (h *hoverer) VisitStructuredArray(n *ast.Node) {
	if h.res != nil || !n.NameRange.Contains(h.pos) {
		return
	}
	names := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		names[i] = "`" + f.Name + "`"
	}
	h.hit(n.NameRange,
		fmt.Sprintf("**Table:** `%s`", n.Name),
		fmt.Sprintf("**Declared size:** %d", n.Size),
		fmt.Sprintf("**Fields:** %s", strings.Join(names, ", ")),
	)
}

func (h *hoverer) VisitField(n *ast.Node) {
	if h.res != nil || !n.Span.Contains(h.pos) {
		return
	}
	h.hit(n.Span,
		fmt.Sprintf("**Field:** `%s`", n.Name),
		fmt.Sprintf("**Position:** %d", n.ParentIndex+1),
	)
}

func (h *hoverer) VisitValue(n *ast.Node) {
	if h.res != nil || !n.Span.Contains(h.pos) {
		return
	}
	switch p := n.Parent; {
	case p == nil:
	case p.Kind == ast.SimpleArrayKind:
		h.hit(n.Span,
			fmt.Sprintf("**Array:** `%s`", p.Name),
			fmt.Sprintf("**Index:** %d", n.ParentIndex+1),
		)
	case p.Kind == ast.DataRowKind:
		arr := p.Parent
		if arr == nil || arr.Kind != ast.StructuredArrayKind {
			return
		}
		// a cell with no positionally-matched field has no hover
		if n.ParentIndex >= len(arr.Fields) {
			return
		}
		field := arr.Fields[n.ParentIndex]
		h.hit(n.Span,
			fmt.Sprintf("**Field:** `%s`", field.Name),
			fmt.Sprintf("**Position:** %d", n.ParentIndex+1),
		)
	}
}
