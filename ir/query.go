package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Query is a parsed path expression such as $.spec.items[0].name,
// $.items[*] or $..name. Each step selects at most one of a key, an
// index, all elements or all descendants.
type Query struct {
	Key     *string
	Index   *int
	All     bool
	Descend bool
	Next    *Query
}

func (q *Query) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := q; x != nil; x = x.Next {
		switch {
		case x.Descend:
			buf.WriteString("..")
		case x.All:
			buf.WriteString("[*]")
		case x.Key != nil:
			if buf.Bytes()[buf.Len()-1] != '.' {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteKey(*x.Key))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// QuoteKey renders a mapping key as a path segment, quoting it when it is
// empty or contains path syntax.
func QuoteKey(k string) string {
	if k != "" && strings.IndexAny(k, "'.*$[] ") == -1 {
		return k
	}
	return "'" + strings.ReplaceAll(k, "'", "\\'") + "'"
}

func ParseQuery(q string) (*Query, error) {
	if len(q) == 0 || q[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrQuery, q)
	}
	if len(q) == 1 {
		return nil, nil
	}
	root := &Query{}
	if err := parseStep(q[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, q, err)
	}
	return root, nil
}

func parseStep(frag string, step *Query) error {
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			step.Descend = true
			if len(frag) == 2 {
				return fmt.Errorf("expected key after '..'")
			}
			rest := frag[2:]
			if rest[0] != '[' {
				rest = "." + rest
			}
			return parseNext(rest, step)
		}
		key, rest, err := parseKey(frag[1:])
		if err != nil {
			return err
		}
		step.Key = &key
		return parseNext(rest, step)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		is := frag[1 : i+1]
		if is == "*" {
			step.All = true
		} else {
			u, err := strconv.ParseUint(is, 10, 31)
			if err != nil {
				return err
			}
			index := int(u)
			step.Index = &index
		}
		return parseNext(frag[i+2:], step)
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseNext(rest string, step *Query) error {
	if rest == "" {
		return nil
	}
	step.Next = &Query{}
	return parseStep(rest, step.Next)
}

func parseKey(frag string) (key, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected key at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// Lookup returns a copy of the single node q addresses, or nil when
// there is none. Wildcards and descent are errors.
func (y *Node) Lookup(q string) (*Node, error) {
	yq, err := ParseQuery(q)
	if err != nil {
		return nil, err
	}
	res := y
	for x := yq; x != nil; x = x.Next {
		switch {
		case x.All, x.Descend:
			return nil, fmt.Errorf("%w: %s selects many nodes", ErrQuery, q)
		case x.Index != nil:
			if res.Type != SequenceType {
				return nil, fmt.Errorf("%w: expected sequence, got %s", ErrType, res.Type)
			}
			if *x.Index >= len(res.Values) {
				return nil, nil
			}
			res = res.Values[*x.Index]
		case x.Key != nil:
			if res.Type != MappingType {
				return nil, fmt.Errorf("%w: expected mapping, got %s", ErrType, res.Type)
			}
			res = res.GetString(*x.Key)
			if res == nil {
				return nil, nil
			}
		}
	}
	return res.Clone(), nil
}

// Select appends copies of all nodes matched by q to dst.
func (y *Node) Select(dst []*Node, q string) ([]*Node, error) {
	yq, err := ParseQuery(q)
	if err != nil {
		return nil, err
	}
	return y.selectQuery(dst, yq), nil
}

func (y *Node) selectQuery(dst []*Node, q *Query) []*Node {
	if q == nil {
		return append(dst, y.Clone())
	}
	if q.Descend {
		dst = y.selectQuery(dst, q.Next)
		for _, v := range y.Values {
			dst = v.selectQuery(dst, q)
		}
		return dst
	}
	switch y.Type {
	case MappingType:
		switch {
		case q.All:
			for _, v := range y.Values {
				dst = v.selectQuery(dst, q.Next)
			}
		case q.Key != nil:
			for i, k := range y.Keys {
				if k.Type == StringType && k.String == *q.Key {
					dst = y.Values[i].selectQuery(dst, q.Next)
				}
			}
		}
	case SequenceType:
		switch {
		case q.All:
			for _, v := range y.Values {
				dst = v.selectQuery(dst, q.Next)
			}
		case q.Index != nil:
			if *q.Index < len(y.Values) {
				dst = y.Values[*q.Index].selectQuery(dst, q.Next)
			}
		}
	}
	return dst
}
