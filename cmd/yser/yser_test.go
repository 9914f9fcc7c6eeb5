package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlser/emit"
	"github.com/signadot/yamlser/ir"
	"github.com/signadot/yamlser/ser"

	jsonpatch "github.com/evanphx/json-patch"
)

const doc = `
zeta: 1
alpha:
  - x
  - 2.5
  - true
  - null
mid: {b: 1, a: 2}
`

func mustDecode(t *testing.T, cfg *MainConfig, src string) *ir.Node {
	t.Helper()
	v, err := decode(cfg, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	node, err := ser.Convert(decoded{v}, cfg.serOpts()...)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestDecodedKeepsOrder(t *testing.T) {
	node := mustDecode(t, &MainConfig{}, doc)
	got, err := emit.RenderString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := "zeta: 1\nalpha:\n  - x\n  - 2.5\n  - true\n  - null\nmid:\n  b: 1\n  a: 2\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	cfg := &MainConfig{InFormat: jsonFormat}
	node := mustDecode(t, cfg, `{"b": [1, 18446744073709551615], "a": "s"}`)
	if node.Keys[0].String != "b" {
		t.Errorf("first key %q", node.Keys[0].String)
	}
	big := node.Values[0].Values[1]
	if big.Uint64 == nil || big.IntText() != "18446744073709551615" {
		t.Errorf("big int = %+v", big)
	}
	if _, err := decode(cfg, []byte("a: 1")); err == nil {
		t.Error("expected JSON syntax error")
	}
}

func TestSelectPath(t *testing.T) {
	node := mustDecode(t, &MainConfig{}, doc)
	got, err := selectPath(node, "$.alpha[0]")
	if err != nil || !ir.Equal(got, ir.FromString("x")) {
		t.Errorf("selectPath one = %+v, %v", got, err)
	}
	got, err = selectPath(node, "$.mid[*]")
	if err != nil || !ir.Equal(got, ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})) {
		t.Errorf("selectPath many = %+v, %v", got, err)
	}
	if _, err := selectPath(node, "$.nope"); err == nil {
		t.Error("expected error for missing node")
	}
}

func TestApplyPatch(t *testing.T) {
	node := mustDecode(t, &MainConfig{}, doc)
	patch, err := jsonpatch.DecodePatch([]byte(`[
		{"op": "replace", "path": "/zeta", "value": 9},
		{"op": "remove", "path": "/alpha/3"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := applyPatch(&MainConfig{}, node, patch)
	if err != nil {
		t.Fatal(err)
	}
	if z := got.GetString("zeta"); z == nil || !ir.Equal(z, ir.FromInt(9)) {
		t.Errorf("zeta = %+v", z)
	}
	if n := got.GetString("alpha").Len(); n != 3 {
		t.Errorf("alpha has %d elements", n)
	}
}

func TestRunExpr(t *testing.T) {
	node := mustDecode(t, &MainConfig{}, doc)
	tests := []struct {
		src  string
		want *ir.Node
	}{
		{"doc.zeta + 1", ir.FromInt(2)},
		{`lookup("$.alpha[0]")`, ir.FromString("x")},
		{`len(select("$.mid[*]"))`, ir.FromInt(2)},
		{`render(doc.mid)`, ir.FromString("{a: 2, b: 1}")},
	}
	for _, tt := range tests {
		got, err := runExpr(&MainConfig{}, tt.src, node)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("%s = %s, want %s", tt.src, emitInline(got), emitInline(tt.want))
		}
	}
}

func TestWriteTree(t *testing.T) {
	node := mustDecode(t, &MainConfig{}, "a: [1, x]\n")
	buf := bytes.NewBuffer(nil)
	if err := writeTree(buf, node); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Mapping (1)",
		`  key String "a"`,
		"  val Sequence (2)",
		"    [0] Int 1",
		`    [1] String "x"`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDiff(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	differs, err := writeDiff(buf, lineDiff("a: 1\nb: 2\n", "a: 1\nb: 3\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Error("expected a difference")
	}
	if diff := cmp.Diff(" a: 1\n-b: 2\n+b: 3\n", buf.String()); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	differs, _ = writeDiff(buf, lineDiff("a: 1\n", "a: 1\n"), false)
	if differs {
		t.Errorf("identical inputs differ: %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]format{"yaml": yamlFormat, "y": yamlFormat, "json": jsonFormat, "j": jsonFormat} {
		got, err := parseFormat(in)
		if err != nil || got != want {
			t.Errorf("parseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseFormat("toml"); err == nil {
		t.Error("expected error")
	}
}
