package main

import (
	"fmt"

	"github.com/signadot/yamlser/debug"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	"github.com/expr-lang/expr"
)

// runExpr evaluates src with the document bound to doc and converts the
// result.
func runExpr(cfg *MainConfig, src string, node *ir.Node) (*ir.Node, error) {
	env := map[string]any{
		"doc": plain(node),
	}
	opts := append(exprOpts(node), expr.Env(env))
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return nil, fmt.Errorf("error running %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("%s => %v\n", src, out)
	}
	return ser.Convert(out, cfg.serOpts()...)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("lookup", func(params ...any) (any, error) {
			res, err := doc.Lookup(params[0].(string))
			if err != nil || res == nil {
				return nil, err
			}
			return plain(res), nil
		},
			new(func(string) any)),
		expr.Function("select", func(params ...any) (any, error) {
			nodes, err := doc.Select(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = plain(n)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("render", func(params ...any) (any, error) {
			n, err := ser.Convert(params[0])
			if err != nil {
				return nil, err
			}
			return emitInline(n), nil
		},
			new(func(any) string)),
	}
}
