package ser

import (
	"strconv"
	"strings"

	"github.com/signadot/yamlser/ir"
)

// segment is one step of the path from the root value to the value being
// converted. Segments are immutable and shared by child converters.
type segment struct {
	parent *segment
	name   string
	index  int
	isIdx  bool
}

func (s *segment) child(name string) *segment {
	return &segment{parent: s, name: name}
}

func (s *segment) at(i int) *segment {
	return &segment{parent: s, index: i, isIdx: true}
}

// key returns the segment for the value of a mapping entry with key k.
func (s *segment) key(k *ir.Node) *segment {
	switch k.Type {
	case ir.StringType:
		return s.child(k.String)
	case ir.IntType:
		return s.child(k.IntText())
	case ir.BoolType:
		return s.child(strconv.FormatBool(k.Bool))
	case ir.FloatType:
		return s.child(k.Float)
	case ir.NullType:
		return s.child("null")
	default:
		return s.child("<" + k.Type.String() + " key>")
	}
}

func (s *segment) String() string {
	if s == nil {
		return "$"
	}
	var segs []*segment
	for p := s; p != nil; p = p.parent {
		segs = append(segs, p)
	}
	var b strings.Builder
	b.WriteString("$")
	for i := len(segs) - 1; i >= 0; i-- {
		p := segs[i]
		if p.isIdx {
			b.WriteString("[" + strconv.Itoa(p.index) + "]")
			continue
		}
		b.WriteString("." + ir.QuoteKey(p.name))
	}
	return b.String()
}
