package main

import (
	"fmt"
	"io"

	"github.com/signadot/yamlser/debug"
	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var patch jsonpatch.Patch
	if cfg.Patch != "" {
		patch, err = loadPatch(cc, cfg.Patch)
		if err != nil {
			return err
		}
	}
	if cfg.Path != "" {
		if _, err := ir.ParseQuery(cfg.Path); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for i, arg := range args {
		if i > 0 && cfg.OutFormat == yamlFormat {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := convertArg(cfg, cc, arg, patch); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, arg string, patch jsonpatch.Patch) error {
	v, err := loadArg(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	node, err := ser.Convert(decoded{v}, cfg.serOpts()...)
	if err != nil {
		return err
	}
	if patch != nil {
		node, err = applyPatch(cfg.MainConfig, node, patch)
		if err != nil {
			return err
		}
	}
	if cfg.Expr != "" {
		node, err = runExpr(cfg.MainConfig, cfg.Expr, node)
		if err != nil {
			return err
		}
	}
	if cfg.Path != "" {
		node, err = selectPath(node, cfg.Path)
		if err != nil {
			return err
		}
	}
	warnDuplicates(arg, node)
	if debug.Convert() {
		debug.Logf("converted %s:\n%s", arg, node)
	}
	opts := cfg.emitOpts(cc.Out)
	if debug.Emit() {
		debug.Logf("rendering %s with %s\n", arg, emit.EngineFromOpts(opts...))
	}
	return emit.Render(node, cc.Out, opts...)
}

// selectPath returns the node q addresses, or a sequence of matches when q
// has wildcards or descends.
func selectPath(node *ir.Node, q string) (*ir.Node, error) {
	yq, err := ir.ParseQuery(q)
	if err != nil {
		return nil, err
	}
	many := false
	for x := yq; x != nil; x = x.Next {
		many = many || x.All || x.Descend
	}
	if many {
		res, err := node.Select(nil, q)
		if err != nil {
			return nil, err
		}
		return ir.FromSlice(res), nil
	}
	res, err := node.Lookup(q)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("nothing at %s", q)
	}
	return res, nil
}

func warnDuplicates(arg string, node *ir.Node) {
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.MappingType {
			return !isPost, nil
		}
		if y.HasDuplicateKeys() {
			theLog.Warn("mapping has duplicate keys", "input", arg, "keys", emitInline(ir.FromSlice(y.Keys)))
		}
		return true, nil
	})
}
