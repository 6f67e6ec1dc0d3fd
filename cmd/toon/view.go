package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inArgs(args) {
		doc, err := loadDoc(cc, arg, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inArgs(args) {
		doc, err := loadDoc(cc, arg, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}
