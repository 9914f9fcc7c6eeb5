package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ser"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var texts [2]string
	for i, arg := range args {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		node, err := ser.Convert(decoded{v}, cfg.serOpts()...)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		texts[i], err = emit.RenderString(node, cfg.renderOpts()...)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
	}
	if cfg.Reverse {
		texts[0], texts[1] = texts[1], texts[0]
	}
	diffs := lineDiff(texts[0], texts[1])
	differs, err := writeDiff(cc.Out, diffs, cfg.useColor(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func lineDiff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// writeDiff writes diffs in unified style without hunk headers and reports
// whether there were any changes.
func writeDiff(w io.Writer, diffs []diffpatch.Diff, colored bool) (bool, error) {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	differs := false
	b := &strings.Builder{}
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffDelete:
				differs = true
				b.WriteString(del.Sprint("-"+line) + "\n")
			case diffpatch.DiffInsert:
				differs = true
				b.WriteString(ins.Sprint("+"+line) + "\n")
			default:
				b.WriteString(" " + line + "\n")
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return differs, err
}
