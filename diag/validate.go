package diag

import (
	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/debug"
)

// Validate walks doc and returns its diagnostics in traversal order.
// Each rule runs guarded: a panic in one rule is logged and suppresses
// neither the remaining rules nor diagnostics from other nodes.
func Validate(doc *ast.Node) []Diagnostic {
	v := &validator{}
	ast.Walk(doc, v)
	if debug.Validate() {
		debug.Logf("validate gave %d diagnostics\n", len(v.diags))
	}
	return v.diags
}

type validator struct {
	diags []Diagnostic
}

func (v *validator) run(rule string, f func() []Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			debug.Logf("toon: %s validation failed: %v\n", rule, r)
		}
	}()
	v.diags = append(v.diags, f()...)
}

func (v *validator) VisitBlock(n *ast.Node) {
	v.run("block", func() []Diagnostic {
		// unreachable under the parser's own invariant, checked anyway
		if len(n.Children) == 0 {
			return []Diagnostic{warningAt(n.Span, msgEmptyBlock)}
		}
		return nil
	})
}

func (v *validator) VisitKeyValue(n *ast.Node) {
	v.run("key-value", func() []Diagnostic {
		var res []Diagnostic
		if n.Key == "" {
			res = append(res, errorAt(n.Span, msgMissingKey))
		}
		if n.Value == "" {
			res = append(res, errorAt(n.Span, msgMissingValue))
		}
		return res
	})
}

func (v *validator) VisitSimpleArray(n *ast.Node) {
	v.run("array size", func() []Diagnostic {
		if len(n.Values) == n.Size {
			return nil
		}
		return []Diagnostic{errorAt(n.SizeRange, msgArrayValues(n.Size, len(n.Values)))}
	})
}

func (v *validator) VisitStructuredArray(n *ast.Node) {
	v.run("row count", func() []Diagnostic {
		if len(n.Rows) == n.Size {
			return nil
		}
		return []Diagnostic{errorAt(n.SizeRange, msgDataRows(n.Size, len(n.Rows)))}
	})
}

func (v *validator) VisitDataRow(n *ast.Node) {
	v.run("field count", func() []Diagnostic {
		arr := n.Parent
		if arr == nil || arr.Kind != ast.StructuredArrayKind {
			return nil
		}
		if len(n.Values) == len(arr.Fields) {
			return nil
		}
		return []Diagnostic{errorAt(n.Span, msgRowValues(len(arr.Fields), len(n.Values)))}
	})
}
