package ir

import (
	"errors"
	"testing"
)

func queryDoc() *Node {
	item := func(name string, n int64) *Node {
		return FromKeyVals([]KeyVal{
			{Key: FromString("name"), Val: FromString(name)},
			{Key: FromString("n"), Val: FromInt(n)},
		})
	}
	return FromKeyVals([]KeyVal{
		{Key: FromString("name"), Val: FromString("top")},
		{Key: FromString("items"), Val: FromSlice([]*Node{item("a", 1), item("b", 2)})},
		{Key: FromString("a.b"), Val: FromBool(true)},
	})
}

func TestParseQueryString(t *testing.T) {
	for _, q := range []string{
		"$",
		"$.items",
		"$.items[1].name",
		"$.items[*].n",
		"$..name",
		"$.'a.b'",
	} {
		yq, err := ParseQuery(q)
		if err != nil {
			t.Errorf("ParseQuery(%q): %v", q, err)
			continue
		}
		if yq == nil {
			if q != "$" {
				t.Errorf("ParseQuery(%q) = nil", q)
			}
			continue
		}
		if got := yq.String(); got != q {
			t.Errorf("ParseQuery(%q).String() = %q", q, got)
		}
	}
}

func TestParseQueryErrors(t *testing.T) {
	for _, q := range []string{"", "items", "$.", "$[x]", "$[1", "$.'open", "$.."} {
		if _, err := ParseQuery(q); !errors.Is(err, ErrQuery) {
			t.Errorf("ParseQuery(%q) error = %v, want ErrQuery", q, err)
		}
	}
}

func TestLookup(t *testing.T) {
	doc := queryDoc()
	tests := []struct {
		q    string
		want *Node
	}{
		{"$.name", FromString("top")},
		{"$.items[1].n", FromInt(2)},
		{"$.'a.b'", FromBool(true)},
		{"$.missing", nil},
		{"$.items[7]", nil},
	}
	for _, tt := range tests {
		got, err := doc.Lookup(tt.q)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.q, err)
			continue
		}
		if (got == nil) != (tt.want == nil) || (got != nil && !Equal(got, tt.want)) {
			t.Errorf("Lookup(%q) = %+v, want %+v", tt.q, got, tt.want)
		}
	}
	if _, err := doc.Lookup("$.name[0]"); !errors.Is(err, ErrType) {
		t.Errorf("index into string: %v", err)
	}
	if _, err := doc.Lookup("$.items[*]"); !errors.Is(err, ErrQuery) {
		t.Errorf("wildcard lookup: %v", err)
	}
}

func TestSelect(t *testing.T) {
	doc := queryDoc()
	tests := []struct {
		q    string
		want []*Node
	}{
		{"$.items[*].n", []*Node{FromInt(1), FromInt(2)}},
		{"$..name", []*Node{FromString("top"), FromString("a"), FromString("b")}},
		{"$.items[0].name", []*Node{FromString("a")}},
		{"$.name.x", nil},
	}
	for _, tt := range tests {
		got, err := doc.Select(nil, tt.q)
		if err != nil {
			t.Errorf("Select(%q): %v", tt.q, err)
			continue
		}
		if !Equal(FromSlice(got), FromSlice(tt.want)) {
			t.Errorf("Select(%q) = %d nodes, want %d", tt.q, len(got), len(tt.want))
		}
	}
	got, _ := doc.Select(nil, "$.name")
	got[0].String = "changed"
	if doc.GetString("name").String != "top" {
		t.Error("Select did not copy")
	}
}
