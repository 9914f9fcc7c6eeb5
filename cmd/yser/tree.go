package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		v, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		node, err := ser.Convert(decoded{v}, cfg.serOpts()...)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		if len(args) > 1 {
			if _, err := fmt.Fprintf(cc.Out, "# %s\n", arg); err != nil {
				return err
			}
		}
		if err := writeTree(cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func writeTree(w io.Writer, node *ir.Node) error {
	b := &strings.Builder{}
	describeTree(b, node, "", "")
	_, err := io.WriteString(w, b.String())
	return err
}

// describeTree writes one line per node: its kind, then the scalar value
// or the number of children.
func describeTree(b *strings.Builder, node *ir.Node, indent, label string) {
	b.WriteString(indent)
	b.WriteString(label)
	b.WriteString(node.Type.String())
	switch node.Type {
	case ir.BoolType:
		b.WriteString(" " + strconv.FormatBool(node.Bool))
	case ir.IntType:
		b.WriteString(" " + node.IntText())
	case ir.FloatType:
		b.WriteString(" " + node.Float)
	case ir.StringType:
		b.WriteString(" " + strconv.Quote(node.String))
	case ir.SequenceType, ir.MappingType:
		b.WriteString(" (" + strconv.Itoa(node.Len()) + ")")
	}
	b.WriteByte('\n')
	indent += "  "
	switch node.Type {
	case ir.SequenceType:
		for i, v := range node.Values {
			describeTree(b, v, indent, "["+strconv.Itoa(i)+"] ")
		}
	case ir.MappingType:
		for i, v := range node.Values {
			describeTree(b, node.Keys[i], indent, "key ")
			describeTree(b, v, indent, "val ")
		}
	}
}
