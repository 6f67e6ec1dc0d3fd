package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/parse"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are mutually exclusive", cli.ErrUsage)
	}
	for _, arg := range inArgs(args) {
		if err := fmtFile(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, path string) error {
	in, err := readInput(cc, path)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return fmt.Errorf("error formatting %s: %w", path, err)
	}
	switch {
	case cfg.Diff:
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(string(in), buf.String(), true)
		if _, err := fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs)); err != nil {
			return err
		}
	case cfg.Write && path != "-":
		if bytes.Equal(in, buf.Bytes()) {
			return nil
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	default:
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
