package emit

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/yamlser/ir"

	"github.com/goccy/go-yaml"
)

func renderGoccy(node *ir.Node, w io.Writer, es *EmitState) error {
	v, err := ToGoccy(node, es.json)
	if err != nil {
		return err
	}
	opts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.flow {
		opts = append(opts, yaml.Flow(true))
	}
	if es.json {
		opts = append(opts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// ToGoccy maps a document tree onto the values go-yaml encodes: mappings
// become yaml.MapSlice so entry order survives. Scalar keys are passed as
// their text, as go-yaml only encodes string keys; sequence and mapping
// keys fail with ErrKey. With json set, non-finite floats fail with
// ErrJSON.
func ToGoccy(node *ir.Node, json bool) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		if node.Uint64 != nil {
			return *node.Uint64, nil
		}
		return node.Int64, nil
	case ir.FloatType:
		if json {
			f, err := node.Float64()
			if err != nil {
				return nil, err
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: float %s", ErrJSON, node.Float)
			}
		}
		return floatText(node.Float), nil
	case ir.StringType:
		return node.String, nil
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			gv, err := ToGoccy(v, json)
			if err != nil {
				return nil, err
			}
			res[i] = gv
		}
		return res, nil
	case ir.MappingType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for i, v := range node.Values {
			gk, err := goccyKey(node.Keys[i])
			if err != nil {
				return nil, err
			}
			gv, err := ToGoccy(v, json)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: gk, Value: gv})
		}
		return res, nil
	default:
		return nil, nil
	}
}

func goccyKey(k *ir.Node) (string, error) {
	if k == nil {
		return "null", nil
	}
	switch k.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(k.Bool), nil
	case ir.IntType:
		return k.IntText(), nil
	case ir.FloatType:
		return k.Float, nil
	case ir.StringType:
		return k.String, nil
	default:
		return "", fmt.Errorf("%w: %s key", ErrKey, k.Type)
	}
}

// floatText emits the canonical float text of the tree unchanged.
type floatText string

func (f floatText) MarshalYAML() ([]byte, error) {
	return []byte(f), nil
}
