package main

import (
	"fmt"
	"strings"

	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	"github.com/goccy/go-yaml"
)

// decoded describes a value produced by the goccy decoder.
type decoded struct {
	v any
}

func (d decoded) SerializeYAML(s ser.Serializer) (*ir.Node, error) {
	switch x := d.v.(type) {
	case nil:
		return s.None()
	case bool:
		return s.Bool(x)
	case int:
		return s.Int64(int64(x))
	case int64:
		return s.Int64(x)
	case uint64:
		return s.Uint64(x)
	case float64:
		return s.Float64(x)
	case string:
		return s.Str(x)
	case []any:
		sb, err := s.Seq(len(x))
		if err != nil {
			return nil, err
		}
		for _, e := range x {
			if err := sb.Element(decoded{e}); err != nil {
				return nil, err
			}
		}
		return sb.End()
	case yaml.MapSlice:
		mb, err := s.Map(len(x))
		if err != nil {
			return nil, err
		}
		for _, item := range x {
			if err := mb.Entry(decoded{item.Key}, decoded{item.Value}); err != nil {
				return nil, err
			}
		}
		return mb.End()
	default:
		return ser.Reflect(x).SerializeYAML(s)
	}
}

// plain returns node as the generic values expr and json-patch work on.
// Non-string keys are formatted as text.
func plain(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntType:
		if node.Uint64 != nil {
			return *node.Uint64
		}
		return node.Int64
	case ir.FloatType:
		f, err := node.Float64()
		if err != nil {
			return node.Float
		}
		return f
	case ir.StringType:
		return node.String
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = plain(v)
		}
		return res
	default:
		res := make(map[string]any, len(node.Values))
		for i, v := range node.Values {
			res[keyText(node.Keys[i])] = plain(v)
		}
		return res
	}
}

func keyText(k *ir.Node) string {
	switch k.Type {
	case ir.StringType:
		return k.String
	case ir.IntType:
		return k.IntText()
	case ir.FloatType:
		return k.Float
	case ir.BoolType:
		return fmt.Sprint(k.Bool)
	case ir.NullType:
		return "null"
	}
	return emitInline(k)
}

func emitInline(node *ir.Node) string {
	s, err := emit.RenderString(node, emit.Flow(true))
	if err != nil {
		return fmt.Sprintf("%+v", node)
	}
	return strings.TrimSpace(s)
}
