// Package ser converts Go values into ir document trees.
//
// # Protocol
//
// A value describes itself to a Serializer: one method per primitive kind
// and builder sessions for sequences, mappings, structs and enum variants.
// Types take part by implementing Serializable:
//
//	type Shape struct{ Kind string; R float64 }
//
//	func (s Shape) SerializeYAML(ser ser.Serializer) (*ir.Node, error) {
//	    if s.Kind == "point" {
//	        return ser.UnitVariant("Shape", 0, "Point")
//	    }
//	    b, err := ser.StructVariant("Shape", 1, "Circle", 1)
//	    if err != nil {
//	        return nil, err
//	    }
//	    if err := b.Field("r", s.R); err != nil {
//	        return nil, err
//	    }
//	    return b.End()
//	}
//
// Values which do not implement Serializable are described by reflection
// (see Reflector), which drives the same protocol.
//
// # Enums
//
// Enum variants use the single key convention:
//
//	unit variant      Foo        -> Foo
//	newtype variant   Bar(7)     -> {Bar: 7}
//	tuple variant     Baz(1, 2)  -> {Baz: [1, 2]}
//	struct variant    Qux{a: 1}  -> {Qux: {a: 1}}
//
// # Converting
//
//	node, err := ser.Convert(value)
//
// Converter is an immutable value and safe for concurrent use. Each
// builder session belongs to the conversion that opened it and must not be
// used after End. Misusing a builder (a map value with no pending key, a
// call after End) is a bug in the producer and panics with a
// *ContractViolation.
package ser
