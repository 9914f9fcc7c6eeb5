package emit

import (
	"io"
	"strconv"

	"github.com/signadot/yamlser/ir"

	"gopkg.in/yaml.v3"
)

func renderV3(node *ir.Node, w io.Writer, es *EmitState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(es.indent)
	if err := enc.Encode(ToYAMLNode(node, es.flow)); err != nil {
		return err
	}
	return enc.Close()
}

// ToYAMLNode maps a document tree onto a yaml.v3 node. Every scalar carries
// its core schema tag, so the encoder quotes strings which would otherwise
// read back as another type.
func ToYAMLNode(node *ir.Node, flow bool) *yaml.Node {
	if node == nil {
		return scalar("!!null", "null")
	}
	switch node.Type {
	case ir.NullType:
		return scalar("!!null", "null")
	case ir.BoolType:
		return scalar("!!bool", strconv.FormatBool(node.Bool))
	case ir.IntType:
		return scalar("!!int", node.IntText())
	case ir.FloatType:
		return scalar("!!float", node.Float)
	case ir.StringType:
		return scalar("!!str", node.String)
	case ir.SequenceType:
		res := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, len(node.Values)),
		}
		for i, v := range node.Values {
			res.Content[i] = ToYAMLNode(v, flow)
		}
		if flow {
			res.Style = yaml.FlowStyle
		}
		return res
	case ir.MappingType:
		res := &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: make([]*yaml.Node, 0, 2*len(node.Values)),
		}
		for i, v := range node.Values {
			res.Content = append(res.Content, ToYAMLNode(node.Keys[i], flow), ToYAMLNode(v, flow))
		}
		if flow {
			res.Style = yaml.FlowStyle
		}
		return res
	default:
		return scalar("!!null", "null")
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
