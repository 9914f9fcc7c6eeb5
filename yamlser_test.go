package yamlser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlser"
	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ser"
	"gopkg.in/yaml.v3"
)

type record struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestEndToEnd(t *testing.T) {
	s, err := yamlser.ToString(record{Name: "a", Count: 3})
	if err != nil {
		t.Fatal(err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatal(err)
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode || len(m.Content) != 4 {
		t.Fatalf("not a two entry mapping:\n%s", s)
	}
	if m.Content[0].Value != "name" || m.Content[2].Value != "count" {
		t.Errorf("entries out of declaration order:\n%s", s)
	}
	var got map[string]any
	if err := yaml.Unmarshal([]byte(s), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"name": "a", "count": 3}, got); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryPointsAgree(t *testing.T) {
	v := []any{record{Name: "x"}, ser.Some(1.5), ser.UnitVariant{Enum: "E", Name: "Foo"}}
	b, err := yamlser.ToBytes(v)
	if err != nil {
		t.Fatal(err)
	}
	s, err := yamlser.ToString(v)
	if err != nil {
		t.Fatal(err)
	}
	var w strings.Builder
	if err := yamlser.ToWriter(&w, v); err != nil {
		t.Fatal(err)
	}
	if string(b) != s || s != w.String() {
		t.Errorf("entry points disagree:\n%s\n%s\n%s", b, s, w.String())
	}
	node, err := yamlser.ToIR(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := emit.MustString(node); got != strings.TrimSpace(s) {
		t.Errorf("ToIR rendering %q, want %q", got, s)
	}
}

func TestOptions(t *testing.T) {
	s, err := yamlser.ToString(map[string]int{"b": 2, "a": 1},
		yamlser.WithEmit(emit.Flow(true)))
	if err != nil {
		t.Fatal(err)
	}
	if s != "{a: 1, b: 2}\n" {
		t.Errorf("flow output %q", s)
	}

	type loop struct{ Next *loop }
	l := &loop{}
	l.Next = l
	_, err = yamlser.ToIR(l, yamlser.WithConvert(ser.MaxDepth(8)))
	if !errors.Is(err, ser.ErrMaxDepth) {
		t.Errorf("cycle error = %v", err)
	}
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestToWriterErrors(t *testing.T) {
	err := yamlser.ToWriter(brokenWriter{}, record{Name: "a"})
	var ioErr *emit.IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, errBroken) {
		t.Errorf("error = %v, want *emit.IOError wrapping the cause", err)
	}

	err = yamlser.ToWriter(brokenWriter{}, make(chan int))
	if !errors.Is(err, ser.ErrUnsupported) {
		t.Errorf("conversion error = %v", err)
	}
}

func ExampleToString() {
	s, err := yamlser.ToString(record{Name: "a", Count: 3})
	if err != nil {
		panic(err)
	}
	fmt.Print(s)
	// Output:
	// name: a
	// count: 3
}

func ExampleToIR() {
	node, _ := yamlser.ToIR(ser.NewtypeVariant{Enum: "Shape", Name: "Circle", Value: 2.0})
	fmt.Println(node.IsSingleton(), node.Keys[0].String, node.Values[0].Type, node.Values[0].Float)
	// Output: true Circle Float 2.0
}
