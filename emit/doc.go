// Package emit renders ir document trees as YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := emit.Render(node, os.Stdout)
//
//	// flow style through the goccy engine
//	err = emit.Render(node, os.Stdout, emit.WithEngine(emit.Goccy), emit.Flow(true))
//
//	// JSON
//	s, err := emit.RenderString(node, emit.JSON(true))
//
// Layout is left entirely to the engine: gopkg.in/yaml.v3 by default, or
// github.com/goccy/go-yaml. This package only maps the tree onto the
// engine's document model and forwards its output to the caller's writer.
//
// # Errors
//
// A failed write to the caller's writer is reported as an *IOError
// (errors.Is(err, ErrIO)), never retried. RenderString reports output
// which is not valid UTF-8 as an *EncodingError. Other engine failures
// wrap ErrEmit: string scalars with invalid UTF-8 (with an *EncodingError),
// sequence or mapping keys under the Goccy engine (ErrKey) and NaN or
// infinite floats in JSON output (ErrJSON).
//
// # Related Packages
//
//   - github.com/signadot/yamlser/ir - document tree
//   - github.com/signadot/yamlser/ser - Go values to document trees
package emit
