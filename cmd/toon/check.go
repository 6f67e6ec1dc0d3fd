package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/diag"
	"github.com/toon-format/go-toon/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	hadErr := false
	for _, arg := range inArgs(args) {
		in, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(in)
		if err != nil {
			hadErr = true
			fmt.Fprintf(cc.Out, "%s: %s: %v\n", arg, color.RedString("error"), err)
			continue
		}
		for _, d := range diag.Validate(doc) {
			sev := color.YellowString("warning")
			if d.Severity == diag.SeverityError {
				hadErr = true
				sev = color.RedString("error")
			}
			fmt.Fprintf(cc.Out, "%s:%d:%d: %s: %s\n",
				arg, d.Range.Start.Line+1, d.Range.Start.Char+1, sev, d.Message)
		}
	}
	if hadErr {
		return cli.ExitCodeErr(1)
	}
	return nil
}
