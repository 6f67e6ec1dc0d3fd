package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/ast"
	"github.com/toon-format/go-toon/convert"
	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/parse"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func loadDoc(cc *cli.Context, path string, f format.Format) (*ast.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	switch f {
	case format.JSONFormat:
		return convert.FromJSON(d)
	case format.YAMLFormat:
		return convert.FromYAML(d)
	default:
		return parse.Parse(d)
	}
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ast.Node) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := convert.ToJSON(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := convert.ToYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	}
}

// inArgs treats an empty argument list as stdin.
func inArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
