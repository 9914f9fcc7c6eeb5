package ser

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/yamlser/ir"
)

// Reflector describes Go values which do not implement Serializable to a
// Serializer:
//
//   - bool, integers, floats and strings map to the matching primitive
//   - []byte and [N]byte map to Bytes
//   - other slices map to Seq, other arrays to Tuple
//   - maps map to Map, entries sorted by key when SortMapKeys is set
//   - structs map to Struct over their exported fields, using TagName
//     tags of the form `yaml:"name,omitempty,inline"`; a struct with no
//     fields (such as struct{}) maps to UnitStruct
//   - pointers map to None when nil and Some otherwise
//   - interfaces are transparent
//   - encoding.TextMarshaler implementations map to Str
//
// A Serializable found anywhere in the value describes itself. Channels,
// functions and complex numbers are not supported.
type Reflector struct {
	TagName     string
	SortMapKeys bool
}

var DefaultReflector = Reflector{TagName: "yaml", SortMapKeys: true}

// Reflect describes v with the DefaultReflector.
func Reflect(v any) Serializable {
	return DefaultReflector.Value(v)
}

// Value returns a Serializable describing v by reflection.
func (r Reflector) Value(v any) Serializable {
	return reflected{r: r, val: reflect.ValueOf(v)}
}

type reflected struct {
	r   Reflector
	val reflect.Value
}

func (x reflected) SerializeYAML(s Serializer) (*ir.Node, error) {
	return x.r.describe(s, x.val)
}

func (r Reflector) wrap(val reflect.Value) reflected {
	return reflected{r: r, val: val}
}

var (
	serializableType  = reflect.TypeFor[Serializable]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// methodValue returns val, or a pointer to it, as an interface value
// implementing iface, if either does.
func methodValue(val reflect.Value, iface reflect.Type) (any, bool) {
	typ := val.Type()
	if typ.Implements(iface) {
		if (typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Interface) && val.IsNil() {
			return nil, false
		}
		if !val.CanInterface() {
			return nil, false
		}
		return val.Interface(), true
	}
	if typ.Kind() == reflect.Ptr || !reflect.PointerTo(typ).Implements(iface) {
		return nil, false
	}
	if val.CanAddr() && val.Addr().CanInterface() {
		return val.Addr().Interface(), true
	}
	if !val.CanInterface() {
		return nil, false
	}
	ptr := reflect.New(typ)
	ptr.Elem().Set(val)
	return ptr.Interface(), true
}

func (r Reflector) describe(s Serializer, val reflect.Value) (*ir.Node, error) {
	if !val.IsValid() {
		return s.None()
	}
	if val.CanInterface() {
		switch x := val.Interface().(type) {
		case ir.Node:
			return Tree{Node: &x}.SerializeYAML(s)
		case *ir.Node:
			return Tree{Node: x}.SerializeYAML(s)
		}
	}
	if v, ok := methodValue(val, serializableType); ok {
		return v.(Serializable).SerializeYAML(s)
	}
	if v, ok := methodValue(val, textMarshalerType); ok {
		text, err := v.(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, &MarshalError{
				Message: fmt.Sprintf("MarshalText of %s failed", val.Type()),
				Err:     err,
			}
		}
		return s.Str(string(text))
	}

	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return s.None()
		}
		return s.Some(r.wrap(val.Elem()))
	case reflect.Interface:
		if val.IsNil() {
			return s.None()
		}
		return r.describe(s, val.Elem())

	case reflect.Bool:
		return s.Bool(val.Bool())
	case reflect.Int:
		return s.Int64(val.Int())
	case reflect.Int8:
		return s.Int8(int8(val.Int()))
	case reflect.Int16:
		return s.Int16(int16(val.Int()))
	case reflect.Int32:
		return s.Int32(int32(val.Int()))
	case reflect.Int64:
		return s.Int64(val.Int())
	case reflect.Uint, reflect.Uintptr, reflect.Uint64:
		return s.Uint64(val.Uint())
	case reflect.Uint8:
		return s.Uint8(uint8(val.Uint()))
	case reflect.Uint16:
		return s.Uint16(uint16(val.Uint()))
	case reflect.Uint32:
		return s.Uint32(uint32(val.Uint()))
	case reflect.Float32:
		return s.Float32(float32(val.Float()))
	case reflect.Float64:
		return s.Float64(val.Float())
	case reflect.String:
		return s.Str(val.String())

	case reflect.Slice:
		if r.isByteElem(val.Type().Elem()) {
			return s.Bytes(byteSlice(val))
		}
		return r.describeSeq(s, val)
	case reflect.Array:
		if r.isByteElem(val.Type().Elem()) {
			return s.Bytes(byteSlice(val))
		}
		return r.describeTuple(s, val)
	case reflect.Map:
		if val.IsNil() {
			return s.None()
		}
		return r.describeMap(s, val)
	case reflect.Struct:
		return r.describeStruct(s, val)

	default:
		return nil, &MarshalError{
			Message: fmt.Sprintf("cannot describe %s", val.Type()),
			Err:     ErrUnsupported,
		}
	}
}

// isByteElem reports whether elements of type t are plain bytes, as
// opposed to a byte kind with its own description.
func (r Reflector) isByteElem(t reflect.Type) bool {
	if t.Kind() != reflect.Uint8 {
		return false
	}
	return !t.Implements(serializableType) && !reflect.PointerTo(t).Implements(serializableType) &&
		!t.Implements(textMarshalerType) && !reflect.PointerTo(t).Implements(textMarshalerType)
}

func byteSlice(val reflect.Value) []byte {
	res := make([]byte, val.Len())
	for i := range res {
		res[i] = byte(val.Index(i).Uint())
	}
	return res
}

func (r Reflector) describeSeq(s Serializer, val reflect.Value) (*ir.Node, error) {
	b, err := s.Seq(val.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < val.Len(); i++ {
		if err := b.Element(r.wrap(val.Index(i))); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func (r Reflector) describeTuple(s Serializer, val reflect.Value) (*ir.Node, error) {
	b, err := s.Tuple(val.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < val.Len(); i++ {
		if err := b.Element(r.wrap(val.Index(i))); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func (r Reflector) describeMap(s Serializer, val reflect.Value) (*ir.Node, error) {
	keys := val.MapKeys()
	if r.SortMapKeys {
		slices.SortStableFunc(keys, compareKeys)
	}
	b, err := s.Map(len(keys))
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err := b.Entry(r.wrap(k), r.wrap(val.MapIndex(k))); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func (r Reflector) describeStruct(s Serializer, val reflect.Value) (*ir.Node, error) {
	typ := val.Type()
	if typ.NumField() == 0 {
		return s.UnitStruct(typ.Name())
	}
	fields, err := structFields(typ, r.TagName)
	if err != nil {
		return nil, &MarshalError{Message: err.Error()}
	}
	b, err := s.Struct(typ.Name(), len(fields))
	if err != nil {
		return nil, err
	}
	for i := range fields {
		f := &fields[i]
		fv, err := val.FieldByIndexErr(f.Index)
		if err != nil {
			// field of a nil embedded pointer
			if err := b.Skip(f.Name); err != nil {
				return nil, err
			}
			continue
		}
		if f.OmitEmpty && isEmptyValue(fv) {
			if err := b.Skip(f.Name); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.Field(f.Name, r.wrap(fv)); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// compareKeys orders map keys of the same type: numbers numerically,
// strings and others by their formatted text.
func compareKeys(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return strings.Compare(a.String(), b.String())
		case reflect.Bool:
			if a.Bool() == b.Bool() {
				return 0
			}
			if !a.Bool() {
				return -1
			}
			return 1
		}
	}
	if c := strings.Compare(a.Kind().String(), b.Kind().String()); c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprint(keyInterface(a)), fmt.Sprint(keyInterface(b)))
}

func keyInterface(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
