package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with
// Equal within one process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		if n.Uint64 != nil {
			h.WriteByte(1)
			binary.LittleEndian.PutUint64(b[:], *n.Uint64)
		} else {
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		}
		h.Write(b[:])
	case FloatType:
		f, err := ParseFloat(n.Float)
		if err != nil {
			h.WriteString(n.Float)
			break
		}
		if f == 0 {
			f = 0 // -0 == 0
		}
		h.WriteString(FormatFloat(f, 64))
	case StringType:
		h.WriteString(n.String)
	case SequenceType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MappingType:
		for i, k := range n.Keys {
			binary.LittleEndian.PutUint64(b[:], k.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
