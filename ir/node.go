package ir

import (
	"math"
	"strconv"
)

// Node is a document tree node. Which fields carry the payload depends on
// Type:
//
//   - BoolType: Bool
//   - IntType: Int64, or Uint64 when the value does not fit in an int64
//   - FloatType: Float, the canonical decimal text of the value
//   - StringType: String
//   - SequenceType: Values
//   - MappingType: Keys[i] is the key for Values[i]
type Node struct {
	Type Type

	Bool   bool
	Int64  int64
	Uint64 *uint64
	Float  string
	String string

	Keys   []*Node
	Values []*Node
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

// FromUint returns an Int node. Values above math.MaxInt64 are kept
// exactly in Uint64 rather than wrapped into Int64.
func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return &Node{
		Type:   IntType,
		Uint64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:  FloatType,
		Float: FormatFloat(f, 64),
	}
}

func FromFloat32(f float32) *Node {
	return &Node{
		Type:  FloatType,
		Float: FormatFloat(float64(f), 32),
	}
}

// FromFloatText returns a Float node holding text, which must parse as a
// float.
func FromFloatText(text string) (*Node, error) {
	f, err := ParseFloat(text)
	if err != nil {
		return nil, err
	}
	return &Node{
		Type:  FloatType,
		Float: FormatFloat(f, 64),
	}, nil
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   SequenceType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   MappingType,
		Keys:   make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Keys[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Singleton returns a mapping with exactly one entry.
func Singleton(key, val *Node) *Node {
	return FromKeyVals([]KeyVal{{Key: key, Val: val}})
}

// IsSingleton reports whether y is a mapping with exactly one entry.
func (y *Node) IsSingleton() bool {
	return y.Type == MappingType && len(y.Keys) == 1
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) KeyVals() []KeyVal {
	if y.Type != MappingType {
		return nil
	}
	res := make([]KeyVal, len(y.Keys))
	for i := range y.Keys {
		res[i] = KeyVal{Key: y.Keys[i], Val: y.Values[i]}
	}
	return res
}

// Get returns the value of the first entry of the mapping y whose key is
// structurally equal to key, or nil.
func (y *Node) Get(key *Node) *Node {
	for i, k := range y.Keys {
		if Equal(k, key) {
			return y.Values[i]
		}
	}
	return nil
}

// GetString is Get with a String key.
func (y *Node) GetString(key string) *Node {
	for i, k := range y.Keys {
		if k.Type == StringType && k.String == key {
			return y.Values[i]
		}
	}
	return nil
}

// HasDuplicateKeys reports whether the mapping y has two structurally equal
// keys. Conversion never deduplicates keys.
func (y *Node) HasDuplicateKeys() bool {
	seen := make(map[uint64][]*Node, len(y.Keys))
	for _, k := range y.Keys {
		h := k.Hash()
		for _, other := range seen[h] {
			if Equal(k, other) {
				return true
			}
		}
		seen[h] = append(seen[h], k)
	}
	return false
}

// IntText returns the decimal text of an Int node.
func (y *Node) IntText() string {
	if y.Uint64 != nil {
		return strconv.FormatUint(*y.Uint64, 10)
	}
	return strconv.FormatInt(y.Int64, 10)
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		Bool:   y.Bool,
		Int64:  y.Int64,
		Float:  y.Float,
		String: y.String,
	}
	if y.Uint64 != nil {
		u := *y.Uint64
		res.Uint64 = &u
	}
	if y.Keys != nil {
		res.Keys = make([]*Node, len(y.Keys))
		for i, k := range y.Keys {
			res.Keys[i] = k.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) the children of each node. Mapping keys are visited before
// their values. Children are skipped when the pre call returns false.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i, yy := range y.Values {
			if y.Type == MappingType {
				if err := y.Keys[i].Visit(f); err != nil {
					return err
				}
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
