package ser

import "github.com/signadot/yamlser/ir"

// Serializable is implemented by values which describe themselves to a
// Serializer.
type Serializable interface {
	SerializeYAML(s Serializer) (*ir.Node, error)
}

// Serializer is the visitor a Serializable describes itself to. Each
// primitive method yields exactly one node. The composite methods open a
// builder session which yields the node on End.
//
// Values passed as any (Some, element and field values) are converted
// recursively: a Serializable describes itself, anything else is
// described by reflection.
//
// A length argument of -1 means the length is not known in advance.
type Serializer interface {
	Bool(v bool) (*ir.Node, error)
	Int8(v int8) (*ir.Node, error)
	Int16(v int16) (*ir.Node, error)
	Int32(v int32) (*ir.Node, error)
	Int64(v int64) (*ir.Node, error)
	Uint8(v uint8) (*ir.Node, error)
	Uint16(v uint16) (*ir.Node, error)
	Uint32(v uint32) (*ir.Node, error)
	Uint64(v uint64) (*ir.Node, error)
	Float32(v float32) (*ir.Node, error)
	Float64(v float64) (*ir.Node, error)
	// Char yields a one character string.
	Char(v rune) (*ir.Node, error)
	Str(v string) (*ir.Node, error)
	// Bytes yields a sequence of ints, one per byte.
	Bytes(v []byte) (*ir.Node, error)

	// None and Some describe an optional value. Some is transparent.
	None() (*ir.Node, error)
	Some(v any) (*ir.Node, error)
	Unit() (*ir.Node, error)
	UnitStruct(name string) (*ir.Node, error)
	// NewtypeStruct describes a single field wrapper, which is
	// transparent.
	NewtypeStruct(name string, v any) (*ir.Node, error)

	UnitVariant(enum string, index int, variant string) (*ir.Node, error)
	NewtypeVariant(enum string, index int, variant string, v any) (*ir.Node, error)

	Seq(n int) (SeqBuilder, error)
	Tuple(n int) (SeqBuilder, error)
	TupleStruct(name string, n int) (SeqBuilder, error)
	TupleVariant(enum string, index int, variant string, n int) (TupleVariantBuilder, error)
	Map(n int) (MapBuilder, error)
	Struct(name string, n int) (StructBuilder, error)
	StructVariant(enum string, index int, variant string, n int) (StructVariantBuilder, error)
}

// SeqBuilder accumulates sequence elements in call order.
type SeqBuilder interface {
	Element(v any) error
	End() (*ir.Node, error)
}

// TupleVariantBuilder accumulates the positional fields of an enum
// variant. End wraps them as {variant: [fields...]}.
type TupleVariantBuilder interface {
	Field(v any) error
	End() (*ir.Node, error)
}

// MapBuilder accumulates entries in the order keys are supplied. Every
// Key must be followed by exactly one Value: Key while a key is pending,
// Value with none, or End with one panic with *ContractViolation. A
// repeated key is kept as a second entry and does not replace the first.
type MapBuilder interface {
	Key(k any) error
	Value(v any) error
	// Entry is Key followed by Value.
	Entry(k, v any) error
	End() (*ir.Node, error)
}

// StructBuilder accumulates named fields in call order.
type StructBuilder interface {
	Field(name string, v any) error
	// Skip records that an optional field was left out.
	Skip(name string) error
	End() (*ir.Node, error)
}

// StructVariantBuilder accumulates the named fields of an enum variant.
// End wraps them as {variant: {fields...}}.
type StructVariantBuilder interface {
	Field(name string, v any) error
	Skip(name string) error
	End() (*ir.Node, error)
}
