package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	T bool `cli:"name=t aliases=toon desc='do i/o in toon'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	default:
		return format.ToonFormat
	}
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.flagFormat()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.flagFormat()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result back to the file'"`
	Diff  bool `cli:"name=d desc='print a diff instead of the result'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=w desc='filter nodes with an expression'"`

	List *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
