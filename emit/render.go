package emit

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/signadot/yamlser/ir"
)

// Render writes node as a YAML document to w.
//
// Nothing is written before the engine produces output, and a write error
// from w stops rendering and is returned as an *IOError. Strings which are
// not valid UTF-8 fail with an error wrapping ErrEmit and an
// *EncodingError, whatever the engine.
func Render(node *ir.Node, w io.Writer, opts ...EmitOption) error {
	if node == nil {
		node = ir.Null()
	}
	es := newEmitState(opts...)
	if err := checkStrings(node); err != nil {
		return fmt.Errorf("%w: %w", ErrEmit, err)
	}
	sink := &sinkWriter{w: w}
	var out io.Writer = sink
	var buf *bytes.Buffer
	if es.colors != nil {
		buf = bytes.NewBuffer(nil)
		out = buf
	}
	var err error
	switch es.engine {
	case YAMLv3:
		err = renderV3(node, out, es)
	case Goccy:
		err = renderGoccy(node, out, es)
	default:
		err = fmt.Errorf("%w: %d", ErrEngine, int(es.engine))
	}
	if err == nil && buf != nil {
		_, err = io.WriteString(sink, es.colors.Colorize(buf.String()))
	}
	if sink.err != nil {
		return &IOError{Err: sink.err}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmit, err)
	}
	return nil
}

// RenderBytes renders node into a fresh byte slice.
func RenderBytes(node *ir.Node, opts ...EmitOption) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 128))
	if err := Render(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderString renders node into a string, failing with an
// *EncodingError if the output is not valid UTF-8.
func RenderString(node *ir.Node, opts ...EmitOption) (string, error) {
	d, err := RenderBytes(node, opts...)
	if err != nil {
		return "", err
	}
	if err := CheckUTF8(d); err != nil {
		return "", err
	}
	return string(d), nil
}

// CheckUTF8 returns an *EncodingError locating the first invalid UTF-8
// sequence in d, or nil.
func CheckUTF8(d []byte) error {
	if utf8.Valid(d) {
		return nil
	}
	off := 0
	for off < len(d) {
		r, size := utf8.DecodeRune(d[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return &EncodingError{Offset: off}
}

// checkStrings returns an *EncodingError for the first string scalar, key
// or value, which is not valid UTF-8. Offset is within that string.
func checkStrings(node *ir.Node) error {
	return node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType || utf8.ValidString(y.String) {
			return !isPost, nil
		}
		return false, CheckUTF8([]byte(y.String))
	})
}

// sinkWriter forwards engine output to the destination and keeps the first
// write error, which then sticks.
type sinkWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sinkWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = err
	}
	return n, err
}
