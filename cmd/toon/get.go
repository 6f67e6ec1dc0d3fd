package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid key path \"\"", cli.ErrUsage)
	}
	args = args[1:]
	for _, arg := range inArgs(args) {
		doc, err := loadDoc(cc, arg, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		n, err := resolve(doc, strings.Split(path, "."))
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if err := printNode(cfg.MainConfig, cc, n); err != nil {
			return err
		}
	}
	return nil
}

func resolve(n *ast.Node, segs []string) (*ast.Node, error) {
	if len(segs) == 0 {
		return n, nil
	}
	seg := segs[0]
	switch n.Kind {
	case ast.DocumentKind, ast.BlockKind:
		for _, c := range n.Children {
			label := c.Key
			if c.Kind == ast.SimpleArrayKind || c.Kind == ast.StructuredArrayKind {
				label = c.Name
			}
			if label == seg {
				return resolve(c, segs[1:])
			}
		}
		return nil, fmt.Errorf("no element %q", seg)
	case ast.SimpleArrayKind:
		return resolveIndex(seg, n.Values, segs[1:])
	case ast.StructuredArrayKind:
		return resolveIndex(seg, n.Rows, segs[1:])
	case ast.DataRowKind:
		return resolveIndex(seg, n.Values, segs[1:])
	default:
		return nil, fmt.Errorf("cannot descend into %s with %q", n.Kind, seg)
	}
}

func resolveIndex(seg string, elts []*ast.Node, rest []string) (*ast.Node, error) {
	i, err := strconv.Atoi(seg)
	if err != nil {
		return nil, fmt.Errorf("array index %q: %w", seg, err)
	}
	if i < 0 || i >= len(elts) {
		return nil, fmt.Errorf("array index %d out of range [0, %d)", i, len(elts))
	}
	return resolve(elts[i], rest)
}

func printNode(cfg *MainConfig, cc *cli.Context, n *ast.Node) error {
	switch n.Kind {
	case ast.KeyValueKind:
		_, err := fmt.Fprintln(cc.Out, n.Value)
		return err
	case ast.ValueKind:
		_, err := fmt.Fprintln(cc.Out, n.Value)
		return err
	default:
		return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
	}
}
