package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlser/debug"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// decode reads one document, keeping mapping entries in document order.
func decode(cfg *MainConfig, d []byte) (any, error) {
	var v any
	if cfg.InFormat == jsonFormat {
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	}
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%s", yaml.FormatError(err, false, true))
	}
	return v, nil
}

func loadArg(cfg *MainConfig, cc *cli.Context, path string) (any, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	v, err := decode(cfg, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if debug.Input() {
		debug.Logf("decoded %s as %T\n", path, v)
	}
	return v, nil
}
