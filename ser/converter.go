package ser

import (
	"fmt"
	"reflect"

	"github.com/signadot/yamlser/ir"
)

// Converter is the Serializer which builds ir trees. It is an immutable
// value: nested conversions run on derived copies, so a Converter may be
// shared between goroutines.
//
// The zero Converter uses the default options.
type Converter struct {
	cfg   *config
	depth int
	at    *segment
}

var _ Serializer = Converter{}

func New(opts ...Option) Converter {
	return Converter{cfg: newConfig(opts...)}
}

// Convert converts v with a Converter built from opts.
func Convert(v any, opts ...Option) (*ir.Node, error) {
	return New(opts...).Convert(v)
}

// Convert converts v to a document tree. A Serializable v describes
// itself and an *ir.Node converts to a copy of itself. A nil pointer is
// null. Anything else is described by reflection.
func (c Converter) Convert(v any) (*ir.Node, error) {
	cfg := c.config()
	if c.depth > cfg.maxDepth {
		return nil, &MarshalError{
			Path:    c.at.String(),
			Message: fmt.Sprintf("nesting deeper than %d, possible circular reference", cfg.maxDepth),
			Err:     ErrMaxDepth,
		}
	}
	var s Serializable
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case Serializable:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return ir.Null(), nil
		}
		s = x
	default:
		s = cfg.reflector.Value(v)
	}
	node, err := s.SerializeYAML(c)
	if err != nil {
		if me, ok := err.(*MarshalError); ok && me.Path == "" {
			me.Path = c.at.String()
		}
		return nil, err
	}
	if node == nil {
		return nil, &MarshalError{
			Path:    c.at.String(),
			Message: fmt.Sprintf("%T described itself as no node", v),
			Err:     ErrNilNode,
		}
	}
	return node, nil
}

func (c Converter) config() *config {
	if c.cfg == nil {
		return defaultConfig
	}
	return c.cfg
}

// nested returns the converter for a value nested in the current one.
func (c Converter) nested(at *segment) Converter {
	return Converter{cfg: c.cfg, depth: c.depth + 1, at: at}
}

func (c Converter) Bool(v bool) (*ir.Node, error)   { return ir.FromBool(v), nil }
func (c Converter) Int8(v int8) (*ir.Node, error)   { return ir.FromInt(int64(v)), nil }
func (c Converter) Int16(v int16) (*ir.Node, error) { return ir.FromInt(int64(v)), nil }
func (c Converter) Int32(v int32) (*ir.Node, error) { return ir.FromInt(int64(v)), nil }
func (c Converter) Int64(v int64) (*ir.Node, error) { return ir.FromInt(v), nil }

func (c Converter) Uint8(v uint8) (*ir.Node, error)   { return ir.FromUint(uint64(v)), nil }
func (c Converter) Uint16(v uint16) (*ir.Node, error) { return ir.FromUint(uint64(v)), nil }
func (c Converter) Uint32(v uint32) (*ir.Node, error) { return ir.FromUint(uint64(v)), nil }

// Uint64 keeps values above math.MaxInt64 exact (see ir.FromUint).
func (c Converter) Uint64(v uint64) (*ir.Node, error) { return ir.FromUint(v), nil }

func (c Converter) Float32(v float32) (*ir.Node, error) { return ir.FromFloat32(v), nil }
func (c Converter) Float64(v float64) (*ir.Node, error) { return ir.FromFloat(v), nil }

func (c Converter) Char(v rune) (*ir.Node, error)  { return ir.FromString(string(v)), nil }
func (c Converter) Str(v string) (*ir.Node, error) { return ir.FromString(v), nil }

func (c Converter) Bytes(v []byte) (*ir.Node, error) {
	values := make([]*ir.Node, len(v))
	for i, b := range v {
		values[i] = ir.FromInt(int64(b))
	}
	return &ir.Node{Type: ir.SequenceType, Values: values}, nil
}

func (c Converter) None() (*ir.Node, error) { return ir.Null(), nil }

func (c Converter) Some(v any) (*ir.Node, error) {
	return c.nested(c.at).Convert(v)
}

func (c Converter) Unit() (*ir.Node, error) { return ir.Null(), nil }

func (c Converter) UnitStruct(string) (*ir.Node, error) { return ir.Null(), nil }

func (c Converter) NewtypeStruct(_ string, v any) (*ir.Node, error) {
	return c.nested(c.at).Convert(v)
}

func (c Converter) UnitVariant(_ string, _ int, variant string) (*ir.Node, error) {
	return ir.FromString(variant), nil
}

func (c Converter) NewtypeVariant(_ string, _ int, variant string, v any) (*ir.Node, error) {
	node, err := c.nested(c.at.child(variant)).Convert(v)
	if err != nil {
		return nil, err
	}
	return ir.Singleton(ir.FromString(variant), node), nil
}

func (c Converter) Seq(n int) (SeqBuilder, error) {
	return &seqBuilder{c: c, values: make([]*ir.Node, 0, max(n, 0))}, nil
}

func (c Converter) Tuple(n int) (SeqBuilder, error) {
	return c.Seq(n)
}

func (c Converter) TupleStruct(_ string, n int) (SeqBuilder, error) {
	return c.Seq(n)
}

func (c Converter) TupleVariant(_ string, _ int, variant string, n int) (TupleVariantBuilder, error) {
	return &tupleVariantBuilder{
		variant: variant,
		seq:     seqBuilder{c: c.nested(c.at.child(variant)), values: make([]*ir.Node, 0, max(n, 0))},
	}, nil
}

func (c Converter) Map(n int) (MapBuilder, error) {
	return &mapBuilder{c: c, kvs: make([]ir.KeyVal, 0, max(n, 0))}, nil
}

func (c Converter) Struct(_ string, n int) (StructBuilder, error) {
	return &structBuilder{c: c, kvs: make([]ir.KeyVal, 0, max(n, 0))}, nil
}

func (c Converter) StructVariant(_ string, _ int, variant string, n int) (StructVariantBuilder, error) {
	return &structVariantBuilder{
		variant: variant,
		fields:  structBuilder{c: c.nested(c.at.child(variant)), kvs: make([]ir.KeyVal, 0, max(n, 0))},
	}, nil
}
