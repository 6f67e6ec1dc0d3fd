package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/convert"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a merge patch file", cli.ErrUsage)
	}
	patchData, err := readInput(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	for _, arg := range inArgs(args[1:]) {
		doc, err := loadDoc(cc, arg, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		docJSON, err := convert.ToJSON(doc)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		merged, err := jsonpatch.MergePatch(docJSON, patchData)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		res, err := convert.FromJSON(merged)
		if err != nil {
			return fmt.Errorf("error converting patched %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
