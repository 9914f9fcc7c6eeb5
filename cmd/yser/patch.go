package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/yamlser/debug"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// loadPatch reads an RFC 6902 patch written in JSON or YAML.
func loadPatch(cc *cli.Context, path string) (jsonpatch.Patch, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %s", path, yaml.FormatError(err, false, true))
	}
	patch, err := jsonpatch.DecodePatch(j)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return patch, nil
}

// applyPatch patches the JSON form of node. Mapping entries come back in
// key order.
func applyPatch(cfg *MainConfig, node *ir.Node, patch jsonpatch.Patch) (*ir.Node, error) {
	d, err := json.Marshal(plain(node))
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patched: %s\n", out)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(out, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return ser.Convert(decoded{v}, cfg.serOpts()...)
}
