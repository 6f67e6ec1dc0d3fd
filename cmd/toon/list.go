package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/ast"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.Env(nodeEnv(nil, 0)), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad expression %q: %w", cli.ErrUsage, cfg.Where, err)
		}
	}
	for _, arg := range inArgs(args) {
		doc, err := loadDoc(cc, arg, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		var walkErr error
		ast.Walk(doc, nil, ast.WalkObserver(func(n *ast.Node, depth int) {
			if walkErr != nil || n.Kind == ast.DocumentKind || n.Kind == ast.EmptyKind {
				return
			}
			if prg != nil {
				res, err := expr.Run(prg, nodeEnv(n, depth))
				if err != nil {
					walkErr = fmt.Errorf("error evaluating %q: %w", cfg.Where, err)
					return
				}
				if res != true {
					return
				}
			}
			fmt.Fprintf(cc.Out, "%s:%-4d %-16s %s\n", arg, n.Span.Start.Line, n.Kind, nodeLabel(n))
		}))
		if walkErr != nil {
			return walkErr
		}
	}
	return nil
}

// nodeEnv is the expression environment for one node. With a nil node
// it doubles as the typing environment for compilation.
func nodeEnv(n *ast.Node, depth int) map[string]any {
	if n == nil {
		n = &ast.Node{}
	}
	return map[string]any{
		"kind":  n.Kind.String(),
		"key":   n.Key,
		"name":  n.Name,
		"value": n.Value,
		"size":  n.Size,
		"depth": depth,
		"line":  n.Span.Start.Line,
	}
}

func nodeLabel(n *ast.Node) string {
	switch n.Kind {
	case ast.KeyValueKind:
		return n.Key
	case ast.BlockKind:
		return n.Key
	case ast.SimpleArrayKind, ast.StructuredArrayKind:
		return n.Name
	case ast.FieldKind:
		return n.Name
	case ast.ValueKind:
		return n.Value
	default:
		return ""
	}
}
