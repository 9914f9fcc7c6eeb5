package ser

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlser/ir"
)

func str(s string) *ir.Node { return ir.FromString(s) }
func num(i int64) *ir.Node  { return ir.FromInt(i) }

func seq(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }

func mapping(kvs ...*ir.Node) *ir.Node {
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: kvs[i], Val: kvs[i+1]})
	}
	return ir.FromKeyVals(res)
}

func checkNode(t *testing.T, want, got *ir.Node) {
	t.Helper()
	if !ir.Equal(want, got) {
		t.Errorf("node mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func mustConvert(t *testing.T, v any, opts ...Option) *ir.Node {
	t.Helper()
	node, err := Convert(v, opts...)
	if err != nil {
		t.Fatalf("Convert(%#v): %v", v, err)
	}
	return node
}

func TestConvertPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *ir.Node
	}{
		{"bool true", true, ir.FromBool(true)},
		{"bool false", false, ir.FromBool(false)},
		{"int8", int8(-5), num(-5)},
		{"int16", int16(-300), num(-300)},
		{"int32", int32(70000), num(70000)},
		{"int64", int64(math.MinInt64), num(math.MinInt64)},
		{"int", 42, num(42)},
		{"uint8", uint8(255), num(255)},
		{"uint16", uint16(65535), num(65535)},
		{"uint32", uint32(math.MaxUint32), num(math.MaxUint32)},
		{"uint64", uint64(7), num(7)},
		{"uint64 max", uint64(math.MaxUint64), ir.FromUint(math.MaxUint64)},
		{"float32", float32(0.5), ir.FromFloat(0.5)},
		{"float64", 3.25, ir.FromFloat(3.25)},
		{"char", Char('x'), str("x")},
		{"multibyte char", Char('é'), str("é")},
		{"string", "hello", str("hello")},
		{"empty string", "", str("")},
		{"bytes", []byte{0, 255}, seq(num(0), num(255))},
		{"nil", nil, ir.Null()},
		{"unit", Unit{}, ir.Null()},
		{"newtype", Newtype{Name: "Meters", Value: 3}, num(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustConvert(t, tt.input)
			checkNode(t, tt.want, got)
			if got.Type != tt.want.Type {
				t.Errorf("type %s, want %s", got.Type, tt.want.Type)
			}
		})
	}
}

func TestConvertUint64KeepsValue(t *testing.T) {
	got := mustConvert(t, uint64(math.MaxInt64)+1)
	if got.Uint64 == nil || *got.Uint64 != uint64(math.MaxInt64)+1 {
		t.Fatalf("got %+v", got)
	}
	if got.Int64 < 0 {
		t.Errorf("value wrapped into a negative int64")
	}
}

func TestConvertFloatText(t *testing.T) {
	if got := mustConvert(t, float32(0.1)); got.Float != "0.1" {
		t.Errorf("float32(0.1) -> %q", got.Float)
	}
	if got := mustConvert(t, 1.0); got.Float != "1.0" {
		t.Errorf("1.0 -> %q", got.Float)
	}
	if got := mustConvert(t, math.Inf(-1)); got.Float != "-.inf" {
		t.Errorf("-Inf -> %q", got.Float)
	}
}

func TestConvertSequences(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *ir.Node
	}{
		{"empty", []int{}, seq()},
		{"one", []string{"a"}, seq(str("a"))},
		{"many", []int{3, 1, 2}, seq(num(3), num(1), num(2))},
		{"array is tuple", [3]bool{true, false, true}, seq(ir.FromBool(true), ir.FromBool(false), ir.FromBool(true))},
		{"tuple", Tuple{1, "two", 3.5}, seq(num(1), str("two"), ir.FromFloat(3.5))},
		{"nested", [][]int{{1}, {}}, seq(seq(num(1)), seq())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkNode(t, tt.want, mustConvert(t, tt.input))
		})
	}
}

func TestConvertOptional(t *testing.T) {
	checkNode(t, mustConvert(t, 5), mustConvert(t, Some(5)))
	checkNode(t, ir.Null(), mustConvert(t, None[int]()))
	five := 5
	checkNode(t, num(5), mustConvert(t, &five))
	checkNode(t, ir.Null(), mustConvert(t, (*int)(nil)))
	checkNode(t, ir.Null(), mustConvert(t, Some[*int](nil)))
	v, ok := Some("x").Get()
	if !ok || v != "x" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
}

func TestConvertNilPointers(t *testing.T) {
	var c *Char
	checkNode(t, ir.Null(), mustConvert(t, c))
	checkNode(t, ir.Null(), mustConvert(t, Some[any](c)))
	checkNode(t, ir.Null(), mustConvert(t, Some(c)))
	checkNode(t, seq(ir.Null()), mustConvert(t, Tuple{c}))
	checkNode(t, seq(ir.Null()), mustConvert(t, []*Char{nil}))
	checkNode(t, ir.Singleton(str("c"), ir.Null()), mustConvert(t, map[string]*Char{"c": nil}))
}

type shape struct {
	kind string
	r    float64
	w, h int
}

func (s shape) SerializeYAML(ser Serializer) (*ir.Node, error) {
	switch s.kind {
	case "point":
		return ser.UnitVariant("Shape", 0, "Point")
	case "circle":
		return ser.NewtypeVariant("Shape", 1, "Circle", s.r)
	case "rect":
		b, err := ser.TupleVariant("Shape", 2, "Rect", 2)
		if err != nil {
			return nil, err
		}
		if err := b.Field(s.w); err != nil {
			return nil, err
		}
		if err := b.Field(s.h); err != nil {
			return nil, err
		}
		return b.End()
	default:
		b, err := ser.StructVariant("Shape", 3, "Box", 2)
		if err != nil {
			return nil, err
		}
		if err := b.Field("w", s.w); err != nil {
			return nil, err
		}
		if err := b.Skip("depth"); err != nil {
			return nil, err
		}
		if err := b.Field("h", s.h); err != nil {
			return nil, err
		}
		return b.End()
	}
}

func TestConvertEnums(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *ir.Node
	}{
		{"unit variant", UnitVariant{Enum: "E", Name: "Foo"}, str("Foo")},
		{"newtype variant", NewtypeVariant{Enum: "E", Index: 1, Name: "Bar", Value: 7}, mapping(str("Bar"), num(7))},
		{"tuple variant", TupleVariant{Enum: "E", Index: 2, Name: "Baz", Fields: []any{1, 2}}, mapping(str("Baz"), seq(num(1), num(2)))},
		{"struct variant", StructVariant{Enum: "E", Index: 3, Name: "Qux", Fields: []Field{{Name: "a", Value: 1}}}, mapping(str("Qux"), mapping(str("a"), num(1)))},
		{"empty tuple variant", TupleVariant{Name: "Nil"}, mapping(str("Nil"), seq())},
		{"custom unit", shape{kind: "point"}, str("Point")},
		{"custom newtype", shape{kind: "circle", r: 1.5}, mapping(str("Circle"), ir.FromFloat(1.5))},
		{"custom tuple", shape{kind: "rect", w: 2, h: 3}, mapping(str("Rect"), seq(num(2), num(3)))},
		{"custom struct", shape{w: 2, h: 3}, mapping(str("Box"), mapping(str("w"), num(2), str("h"), num(3)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustConvert(t, tt.input)
			checkNode(t, tt.want, got)
			if got.Type == ir.MappingType && !got.IsSingleton() {
				t.Errorf("variant mapping has %d entries", got.Len())
			}
		})
	}
}

func TestMapBuilderOrder(t *testing.T) {
	m := OrderedMap{
		{Key: "z", Value: 1},
		{Key: 3, Value: "three"},
		{Key: "a", Value: nil},
		{Key: Tuple{1, 2}, Value: true},
	}
	want := mapping(
		str("z"), num(1),
		num(3), str("three"),
		str("a"), ir.Null(),
		seq(num(1), num(2)), ir.FromBool(true),
	)
	checkNode(t, want, mustConvert(t, m))
}

func TestMapBuilderKeepsDuplicates(t *testing.T) {
	got := mustConvert(t, OrderedMap{{Key: "k", Value: 1}, {Key: "k", Value: 2}})
	if got.Len() != 2 || !got.HasDuplicateKeys() {
		t.Errorf("expected both entries to be kept, got %d", got.Len())
	}
}

func expectViolation(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a contract violation from %s", op)
		}
		cv, ok := r.(*ContractViolation)
		if !ok {
			t.Fatalf("panic value %#v is not a *ContractViolation", r)
		}
		if cv.Op != op {
			t.Errorf("violation op %q, want %q", cv.Op, op)
		}
	}()
	f()
}

func TestMapBuilderContract(t *testing.T) {
	c := New()
	t.Run("value before key", func(t *testing.T) {
		b, _ := c.Map(1)
		expectViolation(t, "Value", func() { _ = b.Value(1) })
		node, err := b.End()
		if err != nil {
			t.Fatal(err)
		}
		if node.Len() != 0 {
			t.Errorf("malformed pair inserted: %d entries", node.Len())
		}
	})
	t.Run("key twice", func(t *testing.T) {
		b, _ := c.Map(1)
		if err := b.Key("a"); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "Key", func() { _ = b.Key("b") })
	})
	t.Run("end with pending key", func(t *testing.T) {
		b, _ := c.Map(1)
		if err := b.Key("a"); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "End", func() { _, _ = b.End() })
	})
	t.Run("repeated key", func(t *testing.T) {
		b, _ := c.Map(2)
		if err := b.Entry("a", 1); err != nil {
			t.Fatal(err)
		}
		if err := b.Entry("a", 2); err != nil {
			t.Fatal(err)
		}
		node, err := b.End()
		if err != nil {
			t.Fatal(err)
		}
		want := ir.FromKeyVals([]ir.KeyVal{
			{Key: str("a"), Val: num(1)},
			{Key: str("a"), Val: num(2)},
		})
		checkNode(t, want, node)
	})
	t.Run("use after end", func(t *testing.T) {
		b, _ := c.Map(0)
		if _, err := b.End(); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "Key", func() { _ = b.Key("a") })
	})
	t.Run("seq end twice", func(t *testing.T) {
		b, _ := c.Seq(-1)
		if _, err := b.End(); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "End", func() { _, _ = b.End() })
	})
	t.Run("struct field after end", func(t *testing.T) {
		b, _ := c.Struct("S", 0)
		if _, err := b.End(); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "Field", func() { _ = b.Field("a", 1) })
	})
	t.Run("variant element after end", func(t *testing.T) {
		b, _ := c.TupleVariant("E", 0, "V", 0)
		if _, err := b.End(); err != nil {
			t.Fatal(err)
		}
		expectViolation(t, "Element", func() { _ = b.Field(1) })
	})
}

func TestContractViolationMessage(t *testing.T) {
	cv := &ContractViolation{Op: "Value", Message: "called before Key"}
	if got := cv.Error(); got != "ser: Value: called before Key" {
		t.Errorf("Error() = %q", got)
	}
}

type failing struct{ err error }

func (f failing) SerializeYAML(Serializer) (*ir.Node, error) { return nil, f.err }

func TestErrorsPropagate(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := Convert(map[string]any{"a": []any{1, failing{err: sentinel}}})
	if err != sentinel {
		t.Errorf("expected the producer error unchanged, got %v", err)
	}

	_, err = Convert(map[string]any{"a": []any{1, failing{err: &MarshalError{Message: "bad"}}}})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MarshalError, got %v", err)
	}
	if me.Path != "$.a[1]" {
		t.Errorf("path = %q, want $.a[1]", me.Path)
	}
}

type nilProducer struct{}

func (nilProducer) SerializeYAML(Serializer) (*ir.Node, error) { return nil, nil }

func TestNilNodeIsAnError(t *testing.T) {
	_, err := Convert(nilProducer{})
	if !errors.Is(err, ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
}

func TestCircularReference(t *testing.T) {
	type Person struct {
		Name string
		Boss *Person
	}

	person := &Person{Name: "Alice"}
	person.Boss = person // Circular reference!

	_, err := Convert(person, MaxDepth(64))
	if err == nil {
		t.Fatal("expected error for circular reference")
	}
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("expected ErrMaxDepth, got %v", err)
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("expected error message to contain 'circular', got: %v", err)
	}
	if !strings.Contains(err.Error(), "$.Boss.Boss") {
		t.Errorf("expected error path in message, got: %v", err)
	}
}

func TestConvertTreeCopies(t *testing.T) {
	orig := mapping(str("a"), seq(num(1)))
	got := mustConvert(t, orig)
	checkNode(t, orig, got)
	got.Values[0].Values[0].Int64 = 2
	if orig.Values[0].Values[0].Int64 != 1 {
		t.Errorf("conversion aliased the input tree")
	}
	checkNode(t, orig, mustConvert(t, Tree{Node: orig}))
	checkNode(t, ir.Null(), mustConvert(t, (*ir.Node)(nil)))
}

func TestConcurrentConversions(t *testing.T) {
	c := New(MaxDepth(32))
	type rec struct {
		ID   int      `yaml:"id"`
		Tags []string `yaml:"tags"`
	}
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			node, err := c.Convert(rec{ID: i, Tags: []string{"x"}})
			if err != nil {
				errs <- err
				return
			}
			if got := node.GetString("id"); got == nil || got.Int64 != int64(i) {
				errs <- errors.New("wrong id")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
