// Package ir provides the document tree produced by converting Go values
// and consumed by emitters.
//
// # Overview
//
// A document tree is a recursive tagged union. Each Node has a Type and
// places its payload in the fields for that type:
//
//   - NullType: no payload, absence or unit
//   - BoolType: Bool
//   - IntType: Int64, or Uint64 for unsigned values above math.MaxInt64
//   - FloatType: Float, canonical decimal text (see FormatFloat)
//   - StringType: String
//   - SequenceType: Values, in order
//   - MappingType: Keys and Values, parallel slices in insertion order
//
// Mapping keys may be nodes of any type. Insertion order is preserved and
// duplicate keys are not detected on construction; use HasDuplicateKeys to
// check.
//
// Trees are strict: a child node belongs to exactly one parent and there
// are no parent pointers, so a finite tree cannot contain cycles.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	big := ir.FromUint(math.MaxUint64)
//	f := ir.FromFloat(1.5)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Comparison and Hashing
//
// Nodes are totally ordered by Compare, and Equal is structural equality.
// Hash is consistent with Equal within a process.
//
// # Thread Safety
//
// Nodes are immutable once built by a conversion and may be read from
// multiple goroutines. Code that mutates nodes must synchronize itself.
package ir
