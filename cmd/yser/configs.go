package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ser"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render with color'"`
	Flow   bool `cli:"name=flow desc='render collections in flow style'"`
	Indent int  `cli:"name=indent desc='spaces per indentation level'"`
	Unsort bool `cli:"name=unsorted desc='keep map keys in decoded order when converting generic values'"`

	InFormat, OutFormat format
	Engine              *emit.Engine

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) engineFunc(_ *cli.Context, v string) (any, error) {
	e, err := emit.ParseEngine(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Engine = &e
	return e, nil
}

func (cfg *MainConfig) serOpts() []ser.Option {
	return []ser.Option{ser.SortMapKeys(!cfg.Unsort)}
}

func (cfg *MainConfig) emitOpts(w io.Writer) []emit.EmitOption {
	res := cfg.renderOpts()
	if cfg.useColor(w) {
		res = append(res, emit.EmitColors(emit.NewColors()))
	}
	return res
}

// renderOpts are the emit options without colors.
func (cfg *MainConfig) renderOpts() []emit.EmitOption {
	res := []emit.EmitOption{
		emit.Flow(cfg.Flow),
		emit.JSON(cfg.OutFormat == jsonFormat),
	}
	if cfg.Indent > 0 {
		res = append(res, emit.Indent(cfg.Indent))
	}
	if cfg.Engine != nil {
		res = append(res, emit.WithEngine(*cfg.Engine))
	}
	return res
}

// useColor honors an explicit -color and otherwise colors terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig

	Patch string `cli:"name=patch desc='apply the RFC 6902 JSON patch in this file before converting'"`
	Expr  string `cli:"name=x desc='convert the result of this expression instead of the document'"`
	Path  string `cli:"name=path desc='convert only the nodes this path selects, e.g. $.items[*].name'"`

	Convert *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
