package ser

import (
	"fmt"

	"github.com/signadot/yamlser/ir"
)

// Char is a single character, described as a one character string rather
// than as an int.
type Char rune

func (c Char) SerializeYAML(s Serializer) (*ir.Node, error) {
	return s.Char(rune(c))
}

// Unit is the value with no content, described as null.
type Unit struct{}

func (Unit) SerializeYAML(s Serializer) (*ir.Node, error) {
	return s.Unit()
}

// Optional is an optional value. The zero Optional is absent.
type Optional[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{v: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Optional[T]) SerializeYAML(s Serializer) (*ir.Node, error) {
	if !o.ok {
		return s.None()
	}
	return s.Some(o.v)
}

// Tuple is a fixed length heterogeneous sequence.
type Tuple []any

func (t Tuple) SerializeYAML(s Serializer) (*ir.Node, error) {
	b, err := s.Tuple(len(t))
	if err != nil {
		return nil, err
	}
	for _, v := range t {
		if err := b.Element(v); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// Newtype is a named single field wrapper. It is transparent.
type Newtype struct {
	Name  string
	Value any
}

func (n Newtype) SerializeYAML(s Serializer) (*ir.Node, error) {
	return s.NewtypeStruct(n.Name, n.Value)
}

// Entry is one entry of an OrderedMap.
type Entry struct {
	Key   any
	Value any
}

// OrderedMap is a mapping which keeps its entries in slice order. Keys
// may be any value.
type OrderedMap []Entry

func (m OrderedMap) SerializeYAML(s Serializer) (*ir.Node, error) {
	b, err := s.Map(len(m))
	if err != nil {
		return nil, err
	}
	for _, e := range m {
		if err := b.Entry(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// Field is a named value of a StructVariant.
type Field struct {
	Name  string
	Value any
}

// UnitVariant is an enum variant with no payload.
type UnitVariant struct {
	Enum  string
	Index int
	Name  string
}

func (v UnitVariant) SerializeYAML(s Serializer) (*ir.Node, error) {
	return s.UnitVariant(v.Enum, v.Index, v.Name)
}

// NewtypeVariant is an enum variant with one unnamed field.
type NewtypeVariant struct {
	Enum  string
	Index int
	Name  string
	Value any
}

func (v NewtypeVariant) SerializeYAML(s Serializer) (*ir.Node, error) {
	return s.NewtypeVariant(v.Enum, v.Index, v.Name, v.Value)
}

// TupleVariant is an enum variant with unnamed fields.
type TupleVariant struct {
	Enum   string
	Index  int
	Name   string
	Fields []any
}

func (v TupleVariant) SerializeYAML(s Serializer) (*ir.Node, error) {
	b, err := s.TupleVariant(v.Enum, v.Index, v.Name, len(v.Fields))
	if err != nil {
		return nil, err
	}
	for _, f := range v.Fields {
		if err := b.Field(f); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// StructVariant is an enum variant with named fields.
type StructVariant struct {
	Enum   string
	Index  int
	Name   string
	Fields []Field
}

func (v StructVariant) SerializeYAML(s Serializer) (*ir.Node, error) {
	b, err := s.StructVariant(v.Enum, v.Index, v.Name, len(v.Fields))
	if err != nil {
		return nil, err
	}
	for _, f := range v.Fields {
		if err := b.Field(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// Tree describes an existing document tree through the protocol.
type Tree struct {
	Node *ir.Node
}

func (t Tree) SerializeYAML(s Serializer) (*ir.Node, error) {
	node := t.Node
	if node == nil {
		return s.None()
	}
	switch node.Type {
	case ir.NullType:
		return s.Unit()
	case ir.BoolType:
		return s.Bool(node.Bool)
	case ir.IntType:
		if node.Uint64 != nil {
			return s.Uint64(*node.Uint64)
		}
		return s.Int64(node.Int64)
	case ir.FloatType:
		f, err := node.Float64()
		if err != nil {
			return nil, &MarshalError{Message: "bad float node", Err: err}
		}
		return s.Float64(f)
	case ir.StringType:
		return s.Str(node.String)
	case ir.SequenceType:
		b, err := s.Seq(len(node.Values))
		if err != nil {
			return nil, err
		}
		for _, v := range node.Values {
			if err := b.Element(Tree{Node: v}); err != nil {
				return nil, err
			}
		}
		return b.End()
	case ir.MappingType:
		b, err := s.Map(len(node.Keys))
		if err != nil {
			return nil, err
		}
		for i, k := range node.Keys {
			if err := b.Entry(Tree{Node: k}, Tree{Node: node.Values[i]}); err != nil {
				return nil, err
			}
		}
		return b.End()
	}
	return nil, &MarshalError{Message: fmt.Sprintf("unknown node type %s", node.Type), Err: ErrUnsupported}
}
